package systems

import (
	"math"

	"github.com/automoto/fruitrun/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactEpsilon absorbs float error when comparing edges that should touch.
const contactEpsilon = 1e-6

// UpdatePhysics integrates gravity and velocity for every body, resolves
// rigid collisions from the rule table, then reports this frame's contacts
// for the rules that carry a handler.
func UpdatePhysics(ecs *ecs.ECS) {
	width := 0.0
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		width = components.Level.Get(levelEntry).Width
	}

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		physics.SpeedY += physics.Gravity
		if physics.MaxFallSpeed > 0 && physics.SpeedY > physics.MaxFallSpeed {
			physics.SpeedY = physics.MaxFallSpeed
		}

		if physics.CollisionDisabled {
			obj.X += physics.SpeedX
			obj.Y += physics.SpeedY
			physics.OnGround = nil
			physics.TouchingLeft = false
			physics.TouchingRight = false
			obj.Update()
			return
		}

		rigid := rigidTagsFor(obj)
		blockedLeft, blockedRight := moveHorizontal(physics, obj, rigid, width)
		moveVertical(physics, obj, rigid)

		walls := wallTagsFor(obj)
		physics.TouchingLeft = blockedLeft || touching(obj, walls, -1)
		physics.TouchingRight = blockedRight || touching(obj, walls, 1)

		obj.Update()
	})

	reportContacts(ecs)
}

// moveHorizontal moves obj by SpeedX, stopping at the first rigid body or
// world edge in the way. Bouncing bodies reverse instead of stopping. Only a
// rigid body counts as blocking a side; the world edge does not.
func moveHorizontal(physics *components.PhysicsData, obj *resolv.Object, rigid []string, width float64) (blockedLeft, blockedRight bool) {
	dx := physics.SpeedX
	if dx == 0 {
		return false, false
	}

	// Check's reach stops a pixel short of the leading right edge.
	checkDistance := dx
	if dx > 0 {
		checkDistance++
	}

	blocked, walled := false, false
	if check := checkTags(obj, checkDistance, 0, rigid); check != nil {
		for _, o := range check.Objects {
			if !overlapsVertically(obj, o) {
				continue
			}
			if dx > 0 && o.X >= obj.X+obj.W-contactEpsilon {
				if limit := o.X - (obj.X + obj.W); limit < dx {
					dx = limit
					blocked, walled = true, true
				}
			} else if dx < 0 && o.X+o.W <= obj.X+contactEpsilon {
				if limit := o.X + o.W - obj.X; limit > dx {
					dx = limit
					blocked, walled = true, true
				}
			}
		}
	}

	if width > 0 {
		if obj.X+dx < 0 {
			dx = -obj.X
			blocked, walled = true, false
		} else if obj.X+obj.W+dx > width {
			dx = width - (obj.X + obj.W)
			blocked, walled = true, false
		}
	}

	if blocked {
		if walled {
			blockedLeft = physics.SpeedX < 0
			blockedRight = physics.SpeedX > 0
		}
		if physics.Bounce {
			physics.SpeedX = -physics.SpeedX
		} else {
			physics.SpeedX = 0
		}
	}

	obj.X += dx
	return blockedLeft, blockedRight
}

// moveVertical moves obj by SpeedY, landing on the nearest rigid top below or
// bumping into the nearest rigid bottom above.
func moveVertical(physics *components.PhysicsData, obj *resolv.Object, rigid []string) {
	physics.OnGround = nil
	dy := physics.SpeedY

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := checkTags(obj, 0, checkDistance, rigid)
	if check == nil {
		obj.Y += dy
		return
	}

	var ground *resolv.Object
	for _, o := range check.Objects {
		if !overlapsHorizontally(obj, o) {
			continue
		}
		if dy >= 0 && o.Y >= obj.Y+obj.H-contactEpsilon {
			if limit := o.Y - (obj.Y + obj.H); limit <= dy {
				dy = limit
				ground = o
			}
		} else if dy < 0 && o.Y+o.H <= obj.Y+contactEpsilon {
			if limit := o.Y + o.H - obj.Y; limit > dy {
				dy = limit
				physics.SpeedY = 0
			}
		}
	}

	if ground != nil {
		physics.OnGround = ground
		physics.SpeedY = 0
		obj.Y = ground.Y - obj.H
		return
	}
	obj.Y += dy
}

// touching reports whether a body with one of tags sits flush against obj on
// the side given by dir (-1 left, 1 right).
func touching(obj *resolv.Object, tags []string, dir float64) bool {
	check := checkTags(obj, dir, 0, tags)
	if check == nil {
		return false
	}
	for _, o := range check.Objects {
		if !overlapsVertically(obj, o) {
			continue
		}
		if dir < 0 && math.Abs(o.X+o.W-obj.X) <= 1 {
			return true
		}
		if dir > 0 && math.Abs(o.X-(obj.X+obj.W)) <= 1 {
			return true
		}
	}
	return false
}

// reportContacts records, for each rule with a handler and in table order,
// every pair of bodies touching under that rule.
func reportContacts(ecs *ecs.ECS) {
	entry, ok := components.Contacts.First(ecs.World)
	if !ok {
		return
	}
	contacts := components.Contacts.Get(entry)
	contacts.Contacts = contacts.Contacts[:0]

	for i, rule := range CollisionRules {
		if rule.Handler == nil {
			continue
		}
		margin := 0.0
		if rule.Kind == RigidCallback {
			margin = 1
		}

		components.Object.Each(ecs.World, func(e *donburi.Entry) {
			a := components.Object.Get(e).Object
			if !a.HasTags(rule.A) || collisionDisabled(e) {
				return
			}
			for _, b := range candidates(a, rule.B, margin) {
				if bEntry, ok := b.Data.(*donburi.Entry); ok && bEntry.Valid() && collisionDisabled(bEntry) {
					continue
				}
				if intersects(a, b, margin) {
					contacts.Contacts = append(contacts.Contacts, components.Contact{Rule: i, A: a, B: b})
				}
			}
		})
	}
}

// candidates returns the broad-phase neighbours of a carrying tag, looking
// at least a pixel past each edge. intersects makes the final call.
func candidates(a *resolv.Object, tag string, margin float64) []*resolv.Object {
	reach := math.Max(margin, 1)
	offsets := [][2]float64{{0, 0}, {-reach, 0}, {reach, 0}, {0, -reach}, {0, reach}}

	var out []*resolv.Object
	seen := map[*resolv.Object]bool{}
	for _, off := range offsets {
		check := a.Check(off[0], off[1], tag)
		if check == nil {
			continue
		}
		for _, o := range check.Objects {
			if !seen[o] {
				seen[o] = true
				out = append(out, o)
			}
		}
	}
	return out
}

// checkTags is obj.Check restricted to tags. An empty tag list matches
// nothing, where Check would match everything.
func checkTags(obj *resolv.Object, dx, dy float64, tags []string) *resolv.Collision {
	if len(tags) == 0 {
		return nil
	}
	return obj.Check(dx, dy, tags...)
}

func collisionDisabled(e *donburi.Entry) bool {
	return e.HasComponent(components.Physics) && components.Physics.Get(e).CollisionDisabled
}

// intersects reports whether a grown by margin on every side overlaps b.
// With margin 0 bodies that only share an edge do not intersect.
func intersects(a, b *resolv.Object, margin float64) bool {
	return a.X-margin < b.X+b.W && a.X+a.W+margin > b.X &&
		a.Y-margin < b.Y+b.H && a.Y+a.H+margin > b.Y
}

func overlapsVertically(a, b *resolv.Object) bool {
	return a.Y < b.Y+b.H-contactEpsilon && a.Y+a.H > b.Y+contactEpsilon
}

func overlapsHorizontally(a, b *resolv.Object) bool {
	return a.X < b.X+b.W-contactEpsilon && a.X+a.W > b.X+contactEpsilon
}
