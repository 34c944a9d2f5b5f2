// Package render holds the renderer contract shared by the HTML and terminal
// front ends, the page view model they draw, a name based registry and theme
// resolution.
//
// Renderers receive a fully projected Page; they never call the gateway.
package render
