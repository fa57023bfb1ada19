// Package audio sonifies the swarm through portaudio. A Processor is a
// sim.Observer; failures to open a device are reported by Start and the
// caller carries on silently.
package audio
