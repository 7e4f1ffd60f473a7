// Command tip-stub serves canned snake tips over the chat-completion wire format,
// for playing without network access or an API key.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/tip"
)

var addrFlag = flag.String("addr", constant.DefaultStubAddr, "Listen address")

func main() {
	flag.Parse()
	log.SetFlags(log.Ldate | log.Ltime)

	srv := tip.NewStubServer(*addrFlag)
	if err := srv.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "tip-stub: %v\n", err)
		os.Exit(1)
	}
	if err := srv.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "tip-stub: %v\n", err)
		os.Exit(1)
	}
	log.Printf("serving tips on %s", srv.URL())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Printf("shutting down")
	if err := srv.Stop(); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
