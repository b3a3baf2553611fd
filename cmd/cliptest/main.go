//go:build ignore

package main

import (
	"fmt"
	"os"

	"github.com/chatsync/chatsync/internal/clipboard"
)

func main() {
	if len(os.Args) > 1 {
		fmt.Printf("Writing %q to clipboard...\n", os.Args[1])
		if err := clipboard.WriteText(os.Args[1]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	fmt.Println("Testing clipboard read...")
	text, err := clipboard.ReadText()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if text == "" {
		fmt.Println("No text in clipboard")
		return
	}
	fmt.Printf("Text found: %d bytes\n%s\n", len(text), text)
}
