package game

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTuningFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "duskwave.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTuning_MissingFileUsesDefaults(t *testing.T) {
	tu, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if tu != defaultTuning() {
		t.Fatalf("missing file changed tuning: %+v", tu)
	}
}

func TestLoadTuning_PartialOverlay(t *testing.T) {
	path := writeTuningFile(t, "spawn_base_interval: 2.0\nxp_curve_slope: 6.0\n")
	tu, err := LoadTuning(path)
	if err != nil {
		t.Fatal(err)
	}
	if tu.SpawnBaseInterval != 2.0 || tu.XPCurveSlope != 6.0 {
		t.Fatalf("overrides not applied: %+v", tu)
	}
	// Untouched knobs keep the compiled defaults.
	if tu.SpawnMinInterval != spawnMinInterval || tu.PotionDropChance != potionDropChance {
		t.Fatalf("defaults lost under a partial overlay: %+v", tu)
	}
}

func TestLoadTuning_MalformedIsFatal(t *testing.T) {
	path := writeTuningFile(t, "spawn_base_interval: [not, a, number]\n")
	if _, err := LoadTuning(path); err == nil {
		t.Fatal("malformed yaml accepted")
	}
}

func TestLoadTuning_OutOfRangeIsFatal(t *testing.T) {
	cases := []string{
		"spawn_min_interval: 0\n",
		"spawn_base_interval: 0.1\n", // below the default min interval
		"spawn_interval_decay: -1\n",
		"potion_drop_chance: 150\n",
		"xp_curve_slope: 0\n",
	}
	for _, body := range cases {
		path := writeTuningFile(t, body)
		if _, err := LoadTuning(path); err == nil {
			t.Errorf("accepted out-of-range tuning %q", body)
		}
	}
}

func TestTuningDrivesXPCurve(t *testing.T) {
	tu := defaultTuning()
	tu.XPCurveSlope = 10
	ts := NewTestSim(WithSeed(1), WithTuning(tu))
	if got := ts.G.xpToNextLevel(3); got != 25 {
		t.Fatalf("xpToNextLevel(3)=%d with slope 10, want 25", got)
	}
}
