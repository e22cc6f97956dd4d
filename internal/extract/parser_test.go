package extract

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/ki-krpto/New-Aeries-Calculator/internal/config"
	"github.com/ki-krpto/New-Aeries-Calculator/internal/logging"
	"github.com/ki-krpto/New-Aeries-Calculator/internal/testutil"
)

func TestParseEmptyInput(t *testing.T) {
	inputs := []string{
		"",
		"   \n\n\t",
		"Aeries Student Portal\nNothing to see here\n",
		"1\n2\n3\n4\n5\n",
	}

	p := Default()
	for _, input := range inputs {
		rec := p.Parse(input)

		if rec.ClassName != "" || rec.TeacherName != "" {
			t.Errorf("Parse(%q) header = (%q, %q), want empty", input, rec.ClassName, rec.TeacherName)
		}
		if rec.Categories == nil || len(rec.Categories) != 0 {
			t.Errorf("Parse(%q) categories = %v, want empty non-nil map", input, rec.Categories)
		}
		if rec.Assignments == nil || len(rec.Assignments) != 0 {
			t.Errorf("Parse(%q) assignments = %v, want empty non-nil slice", input, rec.Assignments)
		}
	}
}

func TestClassName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<<101- Biology 1A- Trimester 2>>", "Biology 1A"},
		{"Gradebook <<205 - AP US History - Semester 1>> today", "AP US History"},
		{"<<7-Chemistry Honors Quarter 3>>", "Chemistry Honors"},
		{"<<301- AP Quarterly Econ- Trimester 2>>", "AP Quarterly Econ"},
		{"<<302- Semesters Abroad Seminar- Semester 1>>", "Semesters Abroad Seminar"},
		{"<<Biology 1A- Trimester 2>>", ""},
		{"<<101- Biology 1A>>", ""},
		{"Biology 1A", ""},
	}

	p := Default()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := p.Parse(tt.input).ClassName; got != tt.want {
				t.Errorf("ClassName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTeacherName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Jane Smith jsmith@school.org", "Jane Smith"},
		{"Teacher: Mary Ann O'Neil moneil@district.k12.ca.us", "Mary Ann O'Neil"},
		{"Robert Lee (rlee@school.org)", "Robert Lee"},
		{"José Núñez jnunez@school.org", "José Núñez"},
		{"Mary O'Brien-Lee mobrien@school.org", "Mary O'Brien-Lee"},
		{"Ángela Ruiz aruiz@school.org", "Ángela Ruiz"},
		{"Jane Smith JSmith@school.org", "Jane Smith"},
		{"jane smith jsmith@school.org", ""},
		{"Smith jsmith@school.org", ""},
		{"Jane Smith\njsmith@school.org", ""},
		{"Jane Smith", ""},
	}

	p := Default()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := p.Parse(tt.input).TeacherName; got != tt.want {
				t.Errorf("TeacherName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseGolden(t *testing.T) {
	rec := Default().Parse(testutil.ReadTestdata(t, "biology_1a.txt"))
	testutil.GoldenJSON(t, "biology_1a", rec)
}

func TestParseEndToEnd(t *testing.T) {
	text := testutil.NewPaste().
		Course("101- Biology 1A- Trimester 2", "Jane Smith jsmith@school.org").
		Totals("Classwork", "40%", "Tests & Quizzes", "60%").
		GradedRow("1", "Cell Diagram", "Classwork", "18 / 20").
		GradedRow("2", "Unit 1 Quiz", "Tests & Quizzes", "45 / 50").
		String()

	rec := Default().Parse(text)

	if rec.ClassName != "Biology 1A" {
		t.Errorf("ClassName = %q, want Biology 1A", rec.ClassName)
	}
	if rec.TeacherName != "Jane Smith" {
		t.Errorf("TeacherName = %q, want Jane Smith", rec.TeacherName)
	}
	if !reflect.DeepEqual(map[string]float64(rec.Categories), map[string]float64{"Classwork": 40, "Tests & Quizzes": 60}) {
		t.Errorf("Categories = %v", rec.Categories)
	}
	if len(rec.Assignments) != 2 {
		t.Fatalf("got %d assignments, want 2: %+v", len(rec.Assignments), rec.Assignments)
	}
	if a := rec.Assignments[1]; a.Description != "Unit 1 Quiz" || a.Category != "Tests & Quizzes" || a.Earned() != 45 || a.PointsPossible != 50 {
		t.Errorf("second assignment = %+v", a)
	}
}

func TestParseIdempotent(t *testing.T) {
	text := testutil.ReadTestdata(t, "biology_1a.txt")
	p := Default()

	first, err := json.Marshal(p.Parse(text))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(p.Parse(text))
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("run %d differs:\n%s\n%s", i, first, again)
		}
	}
}

func TestParseCRLF(t *testing.T) {
	text := testutil.NewPaste().
		Totals("Classwork", "40%").
		GradedRow("7", "Cell Diagram", "Classwork", "18 / 20").
		String()

	unix := Default().Parse(text)
	windows := Default().Parse(strings.ReplaceAll(text, "\n", "\r\n"))
	if !reflect.DeepEqual(unix, windows) {
		t.Errorf("CRLF input parsed differently:\n%+v\n%+v", unix, windows)
	}
}

func TestCustomLayout(t *testing.T) {
	layout := config.DefaultLayout()
	layout.Categories = []string{"Essays"}
	layout.CommentPatterns = []string{`extension`}

	p, err := New(layout)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	text := testutil.NewPaste().
		Totals("Essays", "100%").
		Row("9", "Personal Narrative", "Essays", "40 / 50", "80%", "Extension", "10/01/2025", "Yes").
		GradedRow("10", "Cell Diagram", "Classwork", "18 / 20").
		String()

	rec := p.Parse(text)
	if len(rec.Assignments) != 1 {
		t.Fatalf("got %d assignments, want 1: %+v", len(rec.Assignments), rec.Assignments)
	}
	if a := rec.Assignments[0]; a.Category != "Essays" || a.Comment != "Extension" {
		t.Errorf("assignment = %+v", a)
	}
	if rec.Categories["Essays"] != 100 {
		t.Errorf("Essays weight = %v, want 100", rec.Categories["Essays"])
	}
}

func TestNewInvalidLayout(t *testing.T) {
	layout := config.DefaultLayout()
	layout.CommentPatterns = []string{"retake("}
	if _, err := New(layout); err == nil {
		t.Error("expected error for an invalid comment pattern")
	}

	layout = config.DefaultLayout()
	layout.Categories = nil
	if _, err := New(layout); err == nil {
		t.Error("expected error for a layout without categories")
	}
}

func TestParserDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "debug")
	if err != nil {
		t.Fatalf("logging.New failed: %v", err)
	}

	text := testutil.NewPaste().
		Row("8", "", "Classwork").
		Row("9", "Unit 2 Test", "Tests & Quizzes", "/ 50", "0%", "09/30/2025", "09/30/2025", "No").
		String()
	Default(WithLogger(logger)).Parse(text)

	out := buf.String()
	for _, want := range []string{
		`msg="rejected assignment candidate"`,
		`reason="no description"`,
		`state=validating-description`,
		`msg="skipped assignment pending grading"`,
		`description="Unit 2 Test"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}

func TestParserSilentByDefault(t *testing.T) {
	p := Default(WithLogger(nil))
	if p.logger == nil {
		t.Fatal("WithLogger(nil) should keep the no-op logger")
	}
	p.Parse("8\n\nClasswork\n")
}
