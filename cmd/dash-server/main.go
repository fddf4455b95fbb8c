// Command dash-server serves the current directory over HTTP. It exists
// for sharing builds and assets on a LAN during development.
package main

import (
	"fmt"
	"net/http"
	"os"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve working directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Serving %s on http://localhost:%s\n", dir, port)

	handler := http.FileServer(http.Dir(dir))
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
