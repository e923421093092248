package command

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestParse_Basic(t *testing.T) {
	cmd, errs := Parse("d 0 2 1", 3)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if cmd.Op != OpDisplay {
		t.Fatalf("expected op %q, got %q", OpDisplay, cmd.Op)
	}
	if want := []int{0, 2, 1}; !reflect.DeepEqual(cmd.Columns, want) {
		t.Fatalf("expected columns %v, got %v", want, cmd.Columns)
	}
}

func TestParse_DefaultsToAllColumns(t *testing.T) {
	cmd, errs := Parse("a", 4)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if cmd.Op != OpAnalyze {
		t.Fatalf("expected op %q, got %q", OpAnalyze, cmd.Op)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(cmd.Columns, want) {
		t.Fatalf("expected columns %v, got %v", want, cmd.Columns)
	}
}

func TestParse_AnyNonDigitSeparates(t *testing.T) {
	// Commas, letters and signs are all separators; repeats are kept.
	cmd, errs := Parse("s1,12x3 -1\r", 20)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if want := []int{1, 12, 3, 1}; !reflect.DeepEqual(cmd.Columns, want) {
		t.Fatalf("expected columns %v, got %v", want, cmd.Columns)
	}
}

func TestParse_OutOfRangeBecomesNothing(t *testing.T) {
	cmd, errs := Parse("p 1 5 7", 5)

	if cmd.Op != OpNothing {
		t.Fatalf("expected op %q, got %q", OpNothing, cmd.Op)
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}

	var rerr *RangeError
	if !errors.As(errs[0], &rerr) {
		t.Fatalf("expected *RangeError, got %T", errs[0])
	}
	if got := errs[0].Error(); got != "5 is not between 0 and 5" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := errs[1].Error(); got != "7 is not between 0 and 5" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestParse_EmptyLine(t *testing.T) {
	cmd, errs := Parse("", 3)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if cmd.Op != OpNothing {
		t.Fatalf("expected op %q, got %q", OpNothing, cmd.Op)
	}
}

func TestParse_UnknownOpIsKept(t *testing.T) {
	cmd, _ := Parse("z 0", 1)
	if cmd.Op != Op('z') {
		t.Fatalf("expected op 'z', got %q", cmd.Op)
	}
}

func TestReader_Next(t *testing.T) {
	r := NewReader(strings.NewReader("d 0\na\n\ns 1"))

	var lines []string
	for {
		line, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		lines = append(lines, line)
	}

	if want := []string{"d 0", "a", "", "s 1"}; !reflect.DeepEqual(lines, want) {
		t.Fatalf("expected lines %q, got %q", want, lines)
	}
}
