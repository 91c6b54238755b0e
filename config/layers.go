package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer; draw order follows renderer registration.
const Default ecs.LayerID = 0
