package alert_test

import (
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-clientes/pkg/alert"
)

type recorder struct {
	mu     sync.Mutex
	phases []alert.Phase
}

func (r *recorder) observe(a alert.Alert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phases = append(r.phases, a.Phase)
}

func (r *recorder) snapshot() []alert.Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]alert.Phase, len(r.phases))
	copy(out, r.phases)
	return out
}

func waitForPhase(t *testing.T, p *alert.Presenter, phase alert.Phase) alert.Alert {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if current := p.Current(); current.Phase == phase {
			return current
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for phase %s, current %+v", phase, p.Current())
	return alert.Alert{}
}

func TestPresenter_ShowThenAutoHide(t *testing.T) {
	rec := &recorder{}
	p := alert.New(
		alert.WithDelay(20*time.Millisecond),
		alert.WithFade(10*time.Millisecond),
		alert.WithObserver(rec.observe),
	)
	defer p.Close()

	p.Show("Cliente cadastrado com sucesso!", alert.KindSuccess)

	current := p.Current()
	if current.Phase != alert.PhaseVisible || current.Message != "Cliente cadastrado com sucesso!" || current.Kind != alert.KindSuccess {
		t.Fatalf("unexpected alert right after show: %+v", current)
	}

	waitForPhase(t, p, alert.PhaseHidden)

	want := []alert.Phase{alert.PhaseVisible, alert.PhaseHiding, alert.PhaseHidden}
	if diff := cmp.Diff(want, rec.snapshot()); diff != "" {
		t.Fatalf("phase sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestPresenter_NewAlertReplacesAndRestartsTimer(t *testing.T) {
	p := alert.New(
		alert.WithDelay(100*time.Millisecond),
		alert.WithFade(10*time.Millisecond),
	)
	defer p.Close()

	p.Show("first", alert.KindSuccess)
	time.Sleep(60 * time.Millisecond)
	p.Show("second", alert.KindError)
	time.Sleep(60 * time.Millisecond)

	current := p.Current()
	if current.Message != "second" || current.Kind != alert.KindError {
		t.Fatalf("expected second alert to replace first, got %+v", current)
	}
	if current.Phase != alert.PhaseVisible {
		t.Fatalf("first alert timer must not hide the second one, got phase %s", current.Phase)
	}

	waitForPhase(t, p, alert.PhaseHidden)
}

func TestPresenter_Dismiss(t *testing.T) {
	rec := &recorder{}
	p := alert.New(alert.WithObserver(rec.observe))
	defer p.Close()

	p.Show("oops", alert.KindError)
	p.Dismiss()
	p.Dismiss()

	if p.Current().Visible() {
		t.Fatalf("expected alert hidden after dismiss")
	}
	want := []alert.Phase{alert.PhaseVisible, alert.PhaseHidden}
	if diff := cmp.Diff(want, rec.snapshot()); diff != "" {
		t.Fatalf("phase sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestPresenter_UnknownKindFallsBackToSuccess(t *testing.T) {
	p := alert.New()
	defer p.Close()

	p.Show("  hi  ", alert.Kind("info"))
	current := p.Current()
	if current.Kind != alert.KindSuccess || current.Message != "hi" {
		t.Fatalf("unexpected alert %+v", current)
	}
}

func TestPresenter_CloseIgnoresLaterShows(t *testing.T) {
	p := alert.New()
	p.Close()
	p.Show("late", alert.KindSuccess)
	if p.Current().Visible() {
		t.Fatalf("closed presenter must not show alerts")
	}
}
