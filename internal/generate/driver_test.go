package generate

import (
	"context"
	"errors"
	"slices"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"ca1/internal/automaton"
	"ca1/internal/core"
	"ca1/internal/themes"
)

func testStore(n int) *themes.Store {
	var data []byte
	for i := 0; i < n; i++ {
		for c := 0; c < themes.ThemeColors; c++ {
			data = append(data, 0, byte(i), byte(c), 0x40)
		}
	}
	return themes.FromBytes(data)
}

type rows [][]uint8

func (r *rows) Row(j int, cells []uint8) error {
	if j != len(*r) {
		return errors.New("rows delivered out of order")
	}
	*r = append(*r, slices.Clone(cells))
	return nil
}

func run(t *testing.T, opts Options, store ThemeSource) (Plan, rows) {
	t.Helper()
	d, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	plan, err := d.Configure(store)
	if err != nil {
		t.Fatal(err)
	}
	var out rows
	if err := d.Run(context.Background(), &out); err != nil {
		t.Fatal(err)
	}
	if d.Phase() != Done {
		t.Fatalf("phase after Run = %s", d.Phase())
	}
	return plan, out
}

func TestNewRejectsDimensions(t *testing.T) {
	for _, opts := range []Options{{Rows: 0, Cols: 1}, {Rows: 1, Cols: 0}, {Rows: -1, Cols: -1}} {
		if _, err := New(opts); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("New(%+v) err = %v", opts, err)
		}
	}
}

func TestConfigureDeterministic(t *testing.T) {
	store := testStore(5)
	opts := Options{Seed: core.NewSeed(0x6512bd43), Rows: 3, Cols: 9}

	a, _ := run(t, opts, store)
	b, _ := run(t, opts, store)
	if a.ThemeIndex != b.ThemeIndex || a.Rule != b.Rule || a.Theme != b.Theme {
		t.Fatalf("same seed produced %s and %s", a, b)
	}

	want, err := store.Get(a.ThemeIndex)
	if err != nil {
		t.Fatal(err)
	}
	if a.Theme != want {
		t.Fatalf("plan theme %v does not match store entry %d", a.Theme, a.ThemeIndex)
	}
}

func TestConfigureDrawOrder(t *testing.T) {
	seed := core.NewSeed(7)
	rng := core.NewRNG(seed)
	wantIdx := rng.IntN(5)
	wantRule := rng.Uint64()

	plan, _ := run(t, Options{Seed: seed, Rows: 1, Cols: 1}, testStore(5))
	if plan.ThemeIndex != wantIdx || plan.Rule.Value() != wantRule {
		t.Fatalf("plan = %s, want theme %d rule %x", plan, wantIdx, wantRule)
	}

	explicit := automaton.NewRule(0xabc)
	plan, _ = run(t, Options{Seed: seed, Rule: &explicit, Rows: 1, Cols: 1}, testStore(5))
	if plan.ThemeIndex != wantIdx {
		t.Fatalf("explicit rule changed the theme draw: %d vs %d", plan.ThemeIndex, wantIdx)
	}
	if plan.Rule != explicit {
		t.Fatalf("explicit rule ignored: %s", plan.Rule)
	}
}

func TestPlanString(t *testing.T) {
	p := Plan{Seed: core.NewSeed(0xff), ThemeIndex: 12, Rule: automaton.NewRule(0xbeef)}
	if got := p.String(); got != "seed: 000000ff, theme: 12, rule: beef" {
		t.Fatalf("String() = %q", got)
	}
}

func TestRunAllThrees(t *testing.T) {
	rule := automaton.NewRule(^uint64(0))
	_, out := run(t, Options{Rule: &rule, Rows: 3, Cols: 7}, testStore(1))
	if len(out) != 3 {
		t.Fatalf("got %d rows, want 3", len(out))
	}
	if want := []uint8{0, 0, 0, 3, 0, 0, 0}; !slices.Equal(out[0], want) {
		t.Fatalf("first row = %v, want %v", out[0], want)
	}
	if want := []uint8{3, 3, 3, 3, 3, 3, 3}; !slices.Equal(out[1], want) {
		t.Fatalf("second row = %v, want %v", out[1], want)
	}
	// A full row of threes is code 63 everywhere; shifting by 63 leaves one bit.
	if want := []uint8{1, 1, 1, 1, 1, 1, 1}; !slices.Equal(out[2], want) {
		t.Fatalf("third row = %v, want %v", out[2], want)
	}
}

func TestRunZeroRuleDiesOut(t *testing.T) {
	rule := automaton.NewRule(0)
	_, out := run(t, Options{Rule: &rule, Rows: 4, Cols: 6}, testStore(1))
	if out[0][3] != SeedSymbol {
		t.Fatalf("seed cell missing: %v", out[0])
	}
	for j := 1; j < len(out); j++ {
		if !slices.Equal(out[j], make([]uint8, 6)) {
			t.Fatalf("row %d = %v, want all zero", j, out[j])
		}
	}
}

func TestRunParallelMatchesSequential(t *testing.T) {
	seed := core.NewSeed(0xc0ffee)
	_, seq := run(t, Options{Seed: seed, Rows: 40, Cols: 1500}, testStore(3))
	_, par := run(t, Options{Seed: seed, Rows: 40, Cols: 1500, Workers: 4}, testStore(3))
	for j := range seq {
		if !slices.Equal(seq[j], par[j]) {
			t.Fatalf("row %d differs between sequential and parallel runs", j)
		}
	}
}

func TestPhaseOrder(t *testing.T) {
	d, err := New(Options{Rows: 1, Cols: 1})
	if err != nil {
		t.Fatal(err)
	}
	if d.Phase() != Seeded {
		t.Fatalf("initial phase = %s", d.Phase())
	}
	if err := d.Run(context.Background(), &rows{}); !errors.Is(err, ErrPhase) {
		t.Fatalf("Run before Configure err = %v", err)
	}
	if _, err := d.Configure(testStore(1)); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Configure(testStore(1)); !errors.Is(err, ErrPhase) {
		t.Fatalf("second Configure err = %v", err)
	}
	if err := d.Run(context.Background(), &rows{}); err != nil {
		t.Fatal(err)
	}
	if err := d.Run(context.Background(), &rows{}); !errors.Is(err, ErrPhase) {
		t.Fatalf("second Run err = %v", err)
	}
}

func TestConfigureEmptyStore(t *testing.T) {
	d, err := New(Options{Rows: 1, Cols: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Configure(testStore(0)); !errors.Is(err, themes.ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
	if d.Phase() != Seeded {
		t.Fatalf("phase after failed Configure = %s", d.Phase())
	}
}

func TestRunSinkError(t *testing.T) {
	d, err := New(Options{Rows: 5, Cols: 3})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Configure(testStore(1)); err != nil {
		t.Fatal(err)
	}
	boom := errors.New("disk full")
	sink := RowSinkFunc(func(j int, _ []uint8) error {
		if j == 2 {
			return boom
		}
		return nil
	})
	if err := d.Run(context.Background(), sink); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want sink error", err)
	}
}

func TestLogsPhases(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	rule := automaton.NewRule(1)
	run(t, Options{Rule: &rule, Rows: 2, Cols: 2, Logger: zap.New(obs)}, testStore(2))

	var msgs []string
	for _, e := range logs.All() {
		msgs = append(msgs, e.Message)
	}
	if want := []string{"seed resolved", "configured", "generation complete"}; !slices.Equal(msgs, want) {
		t.Fatalf("log messages = %v, want %v", msgs, want)
	}
	configured := logs.FilterMessage("configured").All()[0].ContextMap()
	if configured["rule"] != "1" || configured["rule_from_seed"] != false {
		t.Fatalf("configured fields = %v", configured)
	}
}
