package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nextellar-labs/create-nextellar-app/internal/scaffold"
)

// walletChoices are the adapters offered in the interactive menu, defaults
// first.
var walletChoices = []string{"freighter", "albedo", "xbull", "rabet", "lobstr"}

// selectWallets walks the user through wallet-adapter selection with a
// numbered menu on stdin/stdout. An empty answer keeps the defaults, which is
// reported as a nil slice.
func selectWallets(r io.Reader, w io.Writer) ([]string, error) {
	reader := bufio.NewReader(r)

	fmt.Fprintln(w, "Select wallet adapters (comma-separated numbers, empty for defaults):")
	for i, choice := range walletChoices {
		marker := " "
		for _, def := range scaffold.DefaultWallets {
			if choice == def {
				marker = "*"
			}
		}
		fmt.Fprintf(w, "  %d) %s %s\n", i+1, choice, marker)
	}
	fmt.Fprint(w, "> ")

	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading selection: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	var selected []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 1 || idx > len(walletChoices) {
			return nil, fmt.Errorf("invalid selection %q: enter numbers between 1 and %d", part, len(walletChoices))
		}
		choice := walletChoices[idx-1]
		if !seen[choice] {
			seen[choice] = true
			selected = append(selected, choice)
		}
	}
	return selected, nil
}
