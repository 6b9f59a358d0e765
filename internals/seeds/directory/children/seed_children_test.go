package children

import (
	"os"
	"testing"
	"time"
)

func TestParseChildrenSeedFile(t *testing.T) {
	raw, err := os.ReadFile("data_children.json")
	if err != nil {
		t.Fatal(err)
	}
	rows, err := ParseChildren(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 {
		t.Fatalf("want 5 children, got %d", len(rows))
	}
	if !rows[0].ChildIsActive || rows[4].ChildIsActive {
		t.Fatal("active flag should default to true and honour false")
	}
	if got := time.Time(*rows[0].ChildBirthDate).Format("2006-01-02"); got != "2021-03-14" {
		t.Fatalf("birth date: %s", got)
	}
}

func TestParseChildrenRejectsBadRows(t *testing.T) {
	if _, err := ParseChildren([]byte(`[{"child_name":""}]`)); err == nil {
		t.Fatal("empty name accepted")
	}
	if _, err := ParseChildren([]byte(`[{"child_name":"X","child_birth_date":"14/03/2021"}]`)); err == nil {
		t.Fatal("bad date accepted")
	}
	// without a birth date the (name, birth) key cannot catch a re-run
	if _, err := ParseChildren([]byte(`[{"child_name":"X"}]`)); err == nil {
		t.Fatal("missing birth date accepted")
	}
}
