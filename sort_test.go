package radixsort

import (
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"
	"time"
)

type recordingObserver struct {
	positions []int
	buckets   []int
	sorts     int
	passes    int
}

func (o *recordingObserver) ObservePass(position, records, buckets int) {
	o.positions = append(o.positions, position)
	o.buckets = append(o.buckets, buckets)
}

func (o *recordingObserver) ObserveSort(passes int, elapsed time.Duration) {
	o.sorts++
	o.passes += passes
}

func sorted(words ...string) []string {
	l := New()
	l.InsertAll(words...)
	l.Sort()
	return l.Words()
}

func TestSortScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		// 'C' is slot 2, 'a' slot 32, 'b' slot 33
		{name: "mixed case", input: []string{"banana", "apple", "Cherry"},
			want: []string{"Cherry", "apple", "banana"}},
		{name: "shorter prefix first", input: []string{"ab", "a", "abc"},
			want: []string{"a", "ab", "abc"}},
		{name: "uppercase before lowercase", input: []string{"zeta", "Zeta", "alpha", "Alpha"},
			want: []string{"Alpha", "Zeta", "alpha", "zeta"}},
		{name: "digits and underscore", input: []string{"a_", "a9", "a0", "ab"},
			want: []string{"ab", "a0", "a9", "a_"}},
		{name: "single word", input: []string{"only"}, want: []string{"only"}},
		{name: "duplicates", input: []string{"b", "a", "b", "a"},
			want: []string{"a", "a", "b", "b"}},
	}
	for _, tt := range tests {
		if got := sorted(tt.input...); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

// The slot mapping makes 'A' equal to the NUL pad and 'u'..'z' equal to
// '0'..'5'. Such words tie, and ties keep their input order.
func TestSortSlotCollisionsKeepInputOrder(t *testing.T) {
	tests := []struct {
		input []string
	}{
		{input: []string{"AA", "A"}},
		{input: []string{"A", "AA"}},
		{input: []string{"xu", "x0"}},
		{input: []string{"x0", "xu"}},
		{input: []string{"BAA", "B", "BA"}},
	}
	for _, tt := range tests {
		if got := sorted(tt.input...); !reflect.DeepEqual(got, tt.input) {
			t.Fatalf("colliding words reordered: got %v, want %v", got, tt.input)
		}
	}
	// lowercase letters past 't' still sort after 't' but before '6'..'9'
	if got := sorted("x9", "xz", "xt"); !reflect.DeepEqual(got, []string{"xt", "xz", "x9"}) {
		t.Fatalf("got %v", got)
	}
}

func TestSortEmptyListRunsNoPass(t *testing.T) {
	obs := &recordingObserver{}
	l := New(WithObserver(obs))
	l.Sort()
	mustBeConsistent(t, l)
	if len(obs.positions) != 0 || obs.passes != 0 {
		t.Fatalf("expected no pass on empty list, observed %v", obs.positions)
	}
	if obs.sorts != 1 {
		t.Fatalf("expected one sort notification, have %d", obs.sorts)
	}
	if l.Len() != 0 {
		t.Fatalf("empty list grew during sort")
	}
}

func TestSortPassesRunRightToLeft(t *testing.T) {
	obs := &recordingObserver{}
	l := New(WithObserver(obs))
	l.InsertAll("abcd", "ab", "b")
	l.Sort()
	if !reflect.DeepEqual(obs.positions, []int{3, 2, 1, 0}) {
		t.Fatalf("unexpected pass positions %v", obs.positions)
	}
	if obs.passes != 4 {
		t.Fatalf("expected 4 passes, have %d", obs.passes)
	}
	// position 3 holds 'd' for abcd and NUL for the others
	if obs.buckets[0] != 2 {
		t.Fatalf("expected 2 buckets at position 3, have %d", obs.buckets[0])
	}
}

func TestSortIdempotent(t *testing.T) {
	l := New()
	l.InsertAll("delta", "Alpha", "charlie", "bravo", "echo_1", "echo")
	l.Sort()
	once := l.Words()
	ids := slices.Collect(l.IDs())
	l.Sort()
	mustBeConsistent(t, l)
	if got := l.Words(); !reflect.DeepEqual(got, once) {
		t.Fatalf("second sort changed order: %v != %v", got, once)
	}
	if got := slices.Collect(l.IDs()); !reflect.DeepEqual(got, ids) {
		t.Fatalf("second sort changed record order: %v != %v", got, ids)
	}
}

func TestInsertThenResortEqualsFullSort(t *testing.T) {
	base := []string{"kiwi", "Mango", "apple", "fig_2", "fig"}
	l := New()
	l.InsertAll(base...)
	l.Sort()
	l.Insert("banana")
	if l.Sorted() {
		t.Fatalf("insert at tail should break sortedness here")
	}
	l.Sort()
	want := sorted(append(slices.Clone(base), "banana")...)
	if got := l.Words(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSortKeepsRecordIdentity(t *testing.T) {
	l := New()
	l.InsertAll("pear", "Plum", "apple", "pear")
	before := make(map[RecordID]string)
	for id := range l.IDs() {
		w, _ := l.Word(id)
		before[id] = w
	}
	l.Sort()
	after := make(map[RecordID]string)
	for id := range l.IDs() {
		w, _ := l.Word(id)
		after[id] = w
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("records changed identity during sort: %v != %v", before, after)
	}
}

func TestDistributeByPositionIsStable(t *testing.T) {
	l := New()
	l.InsertAll("b1", "a1", "b2", "a", "a2", "b3")
	var ids []RecordID
	for id := range l.IDs() {
		ids = append(ids, id)
	}
	used := l.DistributeByPosition(0)
	mustBeConsistent(t, l)
	if used != 2 {
		t.Fatalf("expected 2 used buckets, have %d", used)
	}
	want := []string{"a1", "a", "a2", "b1", "b2", "b3"}
	if got := l.Words(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	// position past the end of every word puts all records in the NUL bucket
	before := l.Words()
	if used := l.DistributeByPosition(40); used != 1 {
		t.Fatalf("expected a single bucket past the end, have %d", used)
	}
	if got := l.Words(); !reflect.DeepEqual(got, before) {
		t.Fatalf("pass past the end reordered words: %v", got)
	}
}

func TestDistributeByPositionRejectsNegative(t *testing.T) {
	l := New()
	l.Insert("word")
	mustPanic(t, "negative position", func() { l.DistributeByPosition(-1) })
}

func randomWord(r *rand.Rand, maxLen int) string {
	const first = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_"
	const rest = first + "0123456789"
	n := 1 + r.IntN(maxLen)
	b := make([]byte, n)
	b[0] = first[r.IntN(len(first))]
	for i := 1; i < n; i++ {
		b[i] = rest[r.IntN(len(rest))]
	}
	return string(b)
}

func TestSortRandomInput(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for round := range 50 {
		n := r.IntN(200)
		words := make([]string, n)
		for i := range words {
			words[i] = randomWord(r, 1+r.IntN(DefaultMaxLen))
		}
		l := New()
		l.InsertAll(words...)
		l.Sort()
		mustBeConsistent(t, l)
		got := l.Words()
		if !l.Sorted() {
			t.Fatalf("round %d: result not ordered: %v", round, got)
		}
		// a stable sort by the same order is the exact expected result
		want := slices.Clone(words)
		slices.SortStableFunc(want, Compare)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("round %d: got %v, want %v", round, got, want)
		}
		if back := slices.Collect(l.Backward()); !slices.Equal(back, reversed(got)) {
			t.Fatalf("round %d: backward walk does not mirror forward walk", round)
		}
	}
}

func reversed(words []string) []string {
	r := slices.Clone(words)
	slices.Reverse(r)
	return r
}

func BenchmarkSort(b *testing.B) {
	r := rand.New(rand.NewPCG(3, 4))
	words := make([]string, 1000)
	for i := range words {
		words[i] = randomWord(r, DefaultMaxLen)
	}
	b.ResetTimer()
	for range b.N {
		l := New()
		l.InsertAll(words...)
		l.Sort()
	}
}
