// Package shell implements the interactive menu over a hash table. All
// input parsing and user-facing error rendering happen here; the table
// itself never prints.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashkv/hashkv/storage/chained"
)

const menu = `
Options:
1. Insert key-value pair
2. Retrieve value by key
3. Delete key-value pair
4. Display hash table structure
5. Show table statistics
6. Exit
`

// Shell drives one table through a numbered menu read from in.
type Shell struct {
	table *chained.Table
	in    *bufio.Scanner
	out   io.Writer
}

func New(table *chained.Table, in io.Reader, out io.Writer) *Shell {
	return &Shell{table: table, in: bufio.NewScanner(in), out: out}
}

// Run loops over the menu until the user exits or input ends.
func (s *Shell) Run() {
	for {
		fmt.Fprint(s.out, menu)
		choice, ok := s.prompt("\nEnter your choice (1-6): ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			s.insert()
		case "2":
			s.retrieve()
		case "3":
			s.delete()
		case "4":
			s.display()
		case "5":
			s.stats()
		case "6":
			fmt.Fprintln(s.out, "Thank you for using the hash table shell!")
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice! Please enter a number between 1-6.")
		}
	}
}

// prompt prints msg and reads one trimmed line; ok is false when input is
// exhausted.
func (s *Shell) prompt(msg string) (line string, ok bool) {
	fmt.Fprint(s.out, msg)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptKey reads an integer key. A non-integer line is reported to the
// user and aborts the current operation without touching the table.
func (s *Shell) promptKey(msg string) (int, bool) {
	line, ok := s.prompt(msg)
	if !ok {
		return 0, false
	}
	key, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input! Please enter an integer key.")
		return 0, false
	}
	return key, true
}

func (s *Shell) insert() {
	key, ok := s.promptKey("Enter key (integer): ")
	if !ok {
		return
	}
	value, ok := s.prompt("Enter data (string): ")
	if !ok {
		return
	}
	s.table.Insert(key, value)
	fmt.Fprintf(s.out, "Successfully inserted key %d with data: %q\n", key, value)
}

func (s *Shell) retrieve() {
	key, ok := s.promptKey("Enter key to retrieve: ")
	if !ok {
		return
	}
	value, found, err := s.table.Retrieve(key)
	switch {
	case err != nil:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	case !found:
		fmt.Fprintf(s.out, "Key %d not found in the hash table.\n", key)
	default:
		fmt.Fprintf(s.out, "Key %d found with data: %v\n", key, value)
	}
}

func (s *Shell) delete() {
	key, ok := s.promptKey("Enter key to delete: ")
	if !ok {
		return
	}
	deleted, err := s.table.Delete(key)
	switch {
	case err != nil:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	case !deleted:
		fmt.Fprintln(s.out, "No such key exists to delete.")
	default:
		fmt.Fprintf(s.out, "Deleted key %d.\n", key)
	}
}

// display renders each non-empty chain as "head --> k2, k3".
func (s *Shell) display() {
	fmt.Fprintln(s.out, "--")
	if s.table.IsEmpty() {
		fmt.Fprintln(s.out, "Hash table is empty.")
		return
	}
	for _, chain := range s.table.Chains() {
		rest := make([]string, 0, len(chain)-1)
		for _, k := range chain[1:] {
			rest = append(rest, strconv.Itoa(k))
		}
		fmt.Fprintf(s.out, "%d --> %s\n", chain[0], strings.Join(rest, ", "))
	}
	fmt.Fprintln(s.out, "--")
}

func (s *Shell) stats() {
	fmt.Fprintln(s.out, "\nHash Table Statistics:")
	fmt.Fprintf(s.out, "Total elements: %d\n", s.table.Size())
	fmt.Fprintf(s.out, "Number of buckets: %d\n", s.table.Capacity())
	fmt.Fprintf(s.out, "Load factor: %.2f\n", s.table.LoadFactor())
	fmt.Fprintf(s.out, "Table is empty: %v\n", s.table.IsEmpty())
}
