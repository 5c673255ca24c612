package glitz_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/gogpu/glitz"
	"github.com/gogpu/glitz/driver/headless"
	"github.com/gogpu/glitz/state"
	"github.com/gogpu/glitz/task"
)

func ExampleLoadOptions() {
	opts, err := glitz.LoadOptions(strings.NewReader(`
depth = true
power-preference = "low-power"
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(opts.Depth, opts.Antialias, opts.PowerPreference)
	// Output: true true low-power
}

func ExampleSubmit() {
	c := glitz.NewContext(headless.New())
	defer c.Close()

	limits := task.Func(task.ID(c.ID()), func(conn *state.Connection) int {
		return conn.Limits().MaxCombinedTextureUnits
	})
	exec, err := glitz.Submit(c, limits)
	if err != nil {
		fmt.Println(err)
		return
	}
	v, ok := exec.Value()
	fmt.Println(v, ok)
	// Output: 32 true
}

func ExampleRun() {
	c := glitz.NewContext(headless.New())
	defer c.Close()

	// A task that waits for the GPU once before finishing.
	fenced := false
	wait := task.New(task.ID(c.ID()), func(*state.Connection) task.Progress[string] {
		if !fenced {
			fenced = true
			return task.ContinueFenced[string]()
		}
		return task.Finished("signaled")
	})

	v, err := glitz.Run(context.Background(), c, wait)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v, c.Pending())
	// Output: signaled 0
}
