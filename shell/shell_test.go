package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashkv/hashkv/storage/chained"
)

// run feeds script to a fresh shell over table and returns everything it
// printed.
func run(t *testing.T, table *chained.Table, script string) string {
	t.Helper()
	var out bytes.Buffer
	New(table, strings.NewReader(script), &out).Run()
	return out.String()
}

func TestInsertAndRetrieve(t *testing.T) {
	out := run(t, chained.New(), "1\n7\nhello\n2\n7\n6\n")

	for _, want := range []string{
		`Successfully inserted key 7 with data: "hello"`,
		"Key 7 found with data: hello",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRetrieveMissingAndEmpty(t *testing.T) {
	table := chained.New()
	out := run(t, table, "2\n5\n1\n1\nx\n2\n5\n6\n")

	if !strings.Contains(out, "Error: hash table is empty") {
		t.Errorf("empty-table retrieve not reported:\n%s", out)
	}
	if !strings.Contains(out, "Key 5 not found in the hash table.") {
		t.Errorf("missing key not reported:\n%s", out)
	}
}

func TestDeleteMessages(t *testing.T) {
	table := chained.New()
	table.Insert(3, "x")

	out := run(t, table, "3\n9\n3\n3\n3\n3\n6\n")

	for _, want := range []string{
		"No such key exists to delete.",
		"Deleted key 3.",
		"Error: hash table is empty",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInvalidInputStaysInShell(t *testing.T) {
	out := run(t, chained.New(), "9\n1\nnot-a-number\n6\n")

	if !strings.Contains(out, "Invalid choice! Please enter a number between 1-6.") {
		t.Errorf("bad menu choice not reported:\n%s", out)
	}
	if !strings.Contains(out, "Invalid input! Please enter an integer key.") {
		t.Errorf("bad key input not reported:\n%s", out)
	}
	if !strings.Contains(out, "Thank you for using the hash table shell!") {
		t.Errorf("shell did not exit cleanly:\n%s", out)
	}
}

func TestDisplay(t *testing.T) {
	table := chained.New()
	for _, k := range []int{0, 5, 10, 4} {
		table.Insert(k, nil)
	}

	out := run(t, table, "4\n6\n")

	if !strings.Contains(out, "0 --> 5, 10") {
		t.Errorf("chain rendering missing:\n%s", out)
	}
	if !strings.Contains(out, "4 --> ") {
		t.Errorf("single-entry chain missing:\n%s", out)
	}
}

func TestDisplayEmpty(t *testing.T) {
	out := run(t, chained.New(), "4\n6\n")
	if !strings.Contains(out, "Hash table is empty.") {
		t.Errorf("empty display message missing:\n%s", out)
	}
}

func TestStats(t *testing.T) {
	table := chained.New()
	for i := 0; i < 6; i++ {
		table.Insert(i, i)
	}

	out := run(t, table, "5\n6\n")

	for _, want := range []string{
		"Total elements: 6",
		"Number of buckets: 5",
		"Load factor: 1.20",
		"Table is empty: false",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestEOFExits(t *testing.T) {
	// no exit choice; input just ends
	out := run(t, chained.New(), "1\n2\nvalue\n")
	if !strings.Contains(out, "Successfully inserted key 2") {
		t.Errorf("insert before EOF missing:\n%s", out)
	}
}
