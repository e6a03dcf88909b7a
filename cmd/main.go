package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/baxromumarov/mpsc"
)

func main() {
	ctx := context.Background()

	tx, rx := mpsc.New[string](4)

	var wg sync.WaitGroup
	for _, name := range []string{"alpha", "beta", "gamma"} {
		handle := tx.Clone()
		wg.Add(1)
		go func(name string, handle *mpsc.Sender[string]) {
			defer wg.Done()
			defer handle.Close()
			for i := 0; i < 3; i++ {
				msg := fmt.Sprintf("%s-%d", name, i)
				if err := handle.Send(ctx, msg); err != nil {
					fmt.Println("send failed:", err)
					return
				}
			}
		}(name, handle)
	}
	tx.Close()

	for {
		v, err := rx.Recv(ctx)
		if err != nil {
			fmt.Println("channel drained:", err)
			break
		}
		fmt.Println("got", v)
		time.Sleep(5 * time.Millisecond) // slow consumer exercises backpressure
	}
	wg.Wait()
}
