package sparkle

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "trigger", "name": "spell", "arg": "lumos"},
			{"action": "scroll", "dy": 250}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Name != "spell" || runner.steps[3].Arg != "lumos" {
		t.Error("step 3 mismatch")
	}
	if runner.steps[4].DY != 250 {
		t.Error("step 4 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	_, err := LoadTestScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadTestScript_UnknownAction(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": [{"action": "dance"}]}`))
	if err == nil {
		t.Error("expected error for unknown action")
	}
}

// runFrames drives the runner and input the way Page.Update does.
func runFrames(tp *testPage, r *TestRunner, n int) {
	for i := 0; i < n; i++ {
		r.step(tp.Page)
		if tp.InjectPending() > 0 {
			tp.processInput()
		}
		tp.Tick(1.0 / 60)
	}
}

func TestTestRunnerDrivesPage(t *testing.T) {
	tp := newTestPage()
	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "load"},
		{"action": "wait", "frames": 130},
		{"action": "scroll", "dy": 1500},
		{"action": "trigger", "name": "pop", "arg": "🎉"},
		{"action": "screenshot", "label": "after pop"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	tp.SetTestRunner(r)

	runFrames(tp, r, 200)
	if !r.Done() {
		t.Fatal("runner not done")
	}
	if !tp.Loaded() {
		t.Error("page not loaded")
	}
	if tp.Scroll().Offset() != 1500 {
		t.Errorf("Offset = %v, want 1500", tp.Scroll().Offset())
	}
	if tp.Field().Mode() != ModePop {
		t.Errorf("mode = %v, want pop", tp.Field().Mode())
	}
	if got := len(tp.sink.named(ActionPop)); got != 1 {
		t.Errorf("pop events = %d, want 1", got)
	}
	if len(tp.screenshotQueue) != 1 || tp.screenshotQueue[0] != "after pop" {
		t.Errorf("screenshot queue = %v", tp.screenshotQueue)
	}
}

func TestTestRunnerWaitsForInjection(t *testing.T) {
	tp := newTestPage()
	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "click", "x": 1, "y": 1},
		{"action": "screenshot", "label": "x"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.step(tp.Page)
	if tp.InjectPending() != 2 {
		t.Fatalf("pending = %d, want 2", tp.InjectPending())
	}
	r.step(tp.Page)
	if len(tp.screenshotQueue) != 0 {
		t.Error("runner advanced while injections were pending")
	}
}
