// Package terminal hosts the arena on a tcell screen
//
// The arena is scaled onto the screen's cell grid with the bottom HUDRows rows
// reserved for status text. Key and mouse events are translated into input
// events and arena coordinates; nothing here touches simulation state directly.
package terminal
