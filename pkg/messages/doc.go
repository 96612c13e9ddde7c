// Package messages holds the renderers for msgkit's built-in message
// shapes.
//
//	format/N        printf-style text, one line per "\n"
//	go_error/1      a Go error; coded errors show "[CODE] message" and details
//	welcome/3       the three-line banner (app, major, minor)
//	no_such_part/1  an unknown part, enriched from the parts catalog
//
// Install registers all of them on a renderer registry.
package messages
