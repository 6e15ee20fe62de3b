// Command hsclient drives a `hangsolve -ipc` process with a fixed list of
// patterns and prints every decoded response.
//
//	hsclient ____ _a__ _a_e
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/bastiangx/hangsolve/pkg/server"
	"github.com/vmihailenco/msgpack/v5"
)

func main() {
	bin := flag.String("bin", "./hangsolve", "Path to the hangsolve binary")
	debug := flag.Bool("d", false, "Start the server in debug mode")
	info := flag.Bool("info", false, "Ask for session info after the last pattern")
	flag.Parse()

	patterns := flag.Args()
	if len(patterns) == 0 {
		fmt.Println("Usage: hsclient [-bin path] [-d] [-info] <pattern>...")
		os.Exit(1)
	}

	args := []string{"-ipc"}
	if *debug {
		args = append(args, "-d")
	}
	cmd := exec.Command(*bin, args...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		fmt.Printf("Failed to get stdin pipe: %v\n", err)
		os.Exit(1)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		fmt.Printf("Failed to get stdout pipe: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Start(); err != nil {
		fmt.Printf("Failed to start hangsolve: %v\n", err)
		os.Exit(1)
	}

	dec := msgpack.NewDecoder(stdout)
	enc := msgpack.NewEncoder(stdin)

	var ready server.StatusResponse
	if err := dec.Decode(&ready); err != nil {
		fmt.Printf("Failed to read ready message: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Server status: %s\n", ready.Status)

	for i, p := range patterns {
		req := server.Request{ID: fmt.Sprintf("t%d", i+1), Action: server.ActionGuess, Pattern: p}
		if err := enc.Encode(req); err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		if !printResponse(dec, p) {
			break
		}
	}

	if *info {
		if err := enc.Encode(server.Request{ID: "info", Action: server.ActionInfo}); err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		var resp server.InfoResponse
		if err := dec.Decode(&resp); err == nil {
			fmt.Printf("Info: words=%d lengths=%d length=%d guessed=%q turns=%d misses=%d over=%v\n",
				resp.Words, resp.Lengths, resp.Length, resp.Guessed, resp.Turns, resp.Misses, resp.Over)
		}
	}

	stdin.Close()
	cmd.Wait()
}

// printResponse decodes one reply. It reports false when the session is over
// or the stream is gone.
func printResponse(dec *msgpack.Decoder, pattern string) bool {
	raw, err := dec.DecodeMap()
	if err != nil {
		if err != io.EOF {
			fmt.Printf("Failed to read response: %v\n", err)
		}
		return false
	}

	data, err := msgpack.Marshal(raw)
	if err != nil {
		fmt.Printf("Failed to re-encode response: %v\n", err)
		return false
	}

	if _, isErr := raw["e"]; isErr {
		var resp server.ErrorResponse
		if err := msgpack.Unmarshal(data, &resp); err == nil {
			fmt.Printf("%s -> error: %s (code: %d)\n", pattern, resp.Error, resp.Code)
		}
		return true
	}

	var resp server.GuessResponse
	if err := msgpack.Unmarshal(data, &resp); err != nil {
		fmt.Printf("Raw decoded response: %+v\n", raw)
		return false
	}

	fmt.Printf("%s -> %s", pattern, resp.Kind)
	switch {
	case resp.Letter != "":
		fmt.Printf(" '%s' (%d words)", resp.Letter, resp.Count)
	case resp.Word != "":
		fmt.Printf(" %s", resp.Word)
	}
	if len(resp.Candidates) > 0 {
		fmt.Printf(" %v", resp.Candidates)
	}
	fmt.Printf(" guessed=%q misses=%d time=%dus\n", resp.Guessed, resp.Misses, resp.TimeTaken)
	return !resp.Over
}
