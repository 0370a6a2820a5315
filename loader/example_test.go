package loader_test

import (
	"context"
	"fmt"
	"time"

	"github.com/sysulq/hresult-go"
	"github.com/sysulq/hresult-go/loader"
)

// windowTitle stands in for a native call that reports a status code and
// writes its answer to an out parameter.
func windowTitle(id int) (string, hresult.Code) {
	if id < 0 {
		return "", hresult.CodeHandle
	}
	return fmt.Sprintf("Window %d", id), hresult.CodeOK
}

func titles(ctx context.Context, ids []int) []hresult.Of[string] {
	results := make([]hresult.Of[string], len(ids))
	for i, id := range ids {
		title, code := windowTitle(id)
		results[i] = hresult.SuccessOrError(title, code)
	}
	return results
}

func Example() {
	l := loader.New(
		titles,
		loader.WithCache(100, time.Minute),
		loader.WithBatchSize(50),
		loader.WithWait(5*time.Millisecond),
	)

	ctx := context.Background()

	if title, ok := l.Load(ctx, 1).TryValue(); ok {
		fmt.Println(title)
	}

	for _, result := range l.LoadMany(ctx, []int{2, -1}) {
		if result.IsError() {
			fmt.Println("error:", result.Code())
			continue
		}
		fmt.Println(result.Value())
	}

	// Output:
	// Window 1
	// Window 2
	// error: E_HANDLE
}
