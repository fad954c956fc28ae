package stack_test

import (
	"fmt"

	"github.com/BrandonKowalski/navstack/pkg/navstack/animation"
	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
	"github.com/BrandonKowalski/navstack/pkg/navstack/screen"
	"github.com/BrandonKowalski/navstack/pkg/navstack/stack"
)

func printer(command string) stack.CommandListener {
	return stack.ListenerFuncs{
		Success: func(id string) { fmt.Println(command, "ok:", id) },
		Error:   func(err error) { fmt.Println(command, "failed:", err) },
	}
}

// This example shows the basic push and pop flow.
func Example() {
	nav, err := stack.New(stack.Config{
		ID:       "main",
		Children: []screen.Screen{screen.NewComponent("home")},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	nav.View()

	nav.Push(screen.NewComponent("detail"), printer("push"))
	fmt.Println(nav.ChildIDs())

	nav.Pop(options.Empty, printer("pop"))
	fmt.Println(nav.ChildIDs())

	nav.Pop(options.Empty, printer("pop"))

	// Output:
	// push ok: detail
	// [home detail]
	// pop ok: detail
	// [home]
	// pop failed: Nothing to pop
}

// This example shows that a command completes only when its transition does.
func ExampleController_Push_manualAnimator() {
	anim := animation.NewManual()
	nav, _ := stack.New(stack.Config{
		Children: []screen.Screen{screen.NewComponent("inbox")},
		Animator: anim,
	})
	nav.View()

	nav.Push(screen.NewComponent("message"), printer("push"))
	fmt.Println("pending:", len(anim.Pending()))

	anim.CompleteAll()

	// Output:
	// pending: 1
	// push ok: message
}

// This example replaces the whole stack in one command.
func ExampleController_SetRoot() {
	nav, _ := stack.New(stack.Config{
		Children: []screen.Screen{screen.NewComponent("login")},
	})
	nav.View()

	nav.SetRoot([]screen.Screen{
		screen.NewComponent("home"),
		screen.NewComponent("settings"),
	}, printer("setRoot"))
	fmt.Println(nav.ChildIDs())

	// Output:
	// setRoot ok: settings
	// [home settings]
}
