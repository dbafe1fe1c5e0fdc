package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// printJSON writes value to stdout as indented JSON.
func printJSON(value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
