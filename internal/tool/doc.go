// Package tool defines the capability contract every tool variant implements
// and the registry mapping tool types to constructors.
//
// # Capability Contract
//
// Tool is the required interface: lifecycle (OnActive/OnInactive), press
// dispatch (OnStart/OnDrag/OnEnd/AfterEnd), and hover dispatch
// (OnMoveExcludeDrag). Optional capabilities are separate interfaces
// (CommandObserver, SpaceObserver, AltObserver, ViewportObserver) detected
// by interface assertion at dispatch time, so optional-hook dispatch stays
// statically verifiable.
//
// # Registration
//
// Tools register a Descriptor (type identifier, hotkey, constructor) once at
// startup. Re-registration replaces the previous constructor and logs a
// warning; it is never an error, so tests and development hot-swaps work
// without ceremony.
package tool
