// Package navigator builds screen trees from layouts and routes navigation
// commands to the stack that holds the addressed screen.
//
// Components are created by name from registered factories, so a layout can be
// written as data:
//
//	n := navigator.New()
//	n.RegisterComponent("inbox")
//	n.Register("message", func(id string, o options.Options) (screen.Screen, error) {
//	    return newMessageScreen(id, o), nil
//	})
//
//	root, _ := navigator.ParseLayout([]byte(`
//	type: stack
//	id: main
//	children:
//	  - type: component
//	    id: inbox
//	    name: inbox
//	`))
//	n.SetRoot(root, nil)
//
//	n.Push("inbox", navigator.Component("message", options.Empty), nil)
//	n.Pop("main", options.Empty, nil)
//
// # Addressing
//
// Every command takes a screen id. Push, Pop, PopToRoot and SetStackRoot accept
// either the id of a stack or the id of any screen directly inside it. PopTo
// needs the id of the screen to return to. Nested stacks are searched innermost
// first.
//
// # Back Handling
//
// HandleBack offers the hardware back action to the innermost visible stack,
// then to each enclosing stack. It reports whether any of them consumed it.
//
// # Events
//
// Successful commands publish events.TypeCommandCompleted on the navigator's
// bus. Stacks publish events.TypeScreenPopped on the same bus, and components
// registered with RegisterComponent publish events.TypeNavigationButtonPressed.
package navigator
