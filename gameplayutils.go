// Package gameplayutils is a small, stateless 3D gameplay math toolkit: smooth
// rotation interpolation over quaternions, closed-form ballistic jump solving, and
// nearest-entity searches over collections of positioned objects. The coordinate
// space is right-handed with +Z as the world up axis, and rotations are exposed
// externally as pitch / yaw / roll Rotators in degrees.
//
// Everything in this package is a pure function or a value type; nothing here
// allocates shared state, spawns goroutines, or performs I/O (scene loading from
// glTF files being the one deliberate exception). The companion console package
// exposes the same operations to an embedded Lua interpreter.
package gameplayutils
