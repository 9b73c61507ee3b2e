package sparkle

import (
	"math"
	"testing"
)

func newTestEmitter(max int) *ConfettiEmitter {
	e := NewConfettiEmitter(max, testRand())
	e.Resize(800, 600)
	return e
}

func TestConfettiEmitterPool(t *testing.T) {
	e := newTestEmitter(500)
	if len(e.pieces) != 500 {
		t.Errorf("pool size = %d, want 500", len(e.pieces))
	}
	if e.AliveCount() != 0 {
		t.Errorf("alive = %d, want 0", e.AliveCount())
	}
}

func TestConfettiEmitterDefaultPool(t *testing.T) {
	e := NewConfettiEmitter(0, nil)
	if len(e.pieces) != 1024 {
		t.Errorf("default pool size = %d, want 1024", len(e.pieces))
	}
}

func TestDefaultBurst(t *testing.T) {
	o := DefaultBurst()
	if o.ParticleCount != 50 || o.Angle != 90 || o.Spread != 45 || o.StartVelocity != 45 {
		t.Errorf("DefaultBurst = %+v", o)
	}
	if o.Origin != (Vec2{0.5, 0.5}) {
		t.Errorf("Origin = %+v, want center", o.Origin)
	}
	if o.Ticks != 200 || o.Decay != 0.9 || o.Gravity != 1 || o.Scalar != 1 {
		t.Errorf("DefaultBurst = %+v", o)
	}
}

func TestBurstSpawnsAtOrigin(t *testing.T) {
	e := newTestEmitter(100)
	o := DefaultBurst()
	o.ParticleCount = 10
	o.Origin = Vec2{0.25, 0.75}
	e.Burst(o)

	if e.AliveCount() != 10 {
		t.Fatalf("alive = %d, want 10", e.AliveCount())
	}
	for i := 0; i < e.alive; i++ {
		p := e.pieces[i]
		if p.x != 200 || p.y != 450 {
			t.Errorf("piece %d at (%v,%v), want (200,450)", i, p.x, p.y)
		}
	}
}

func TestBurstAngleWithinSpread(t *testing.T) {
	e := newTestEmitter(200)
	o := DefaultBurst()
	o.ParticleCount = 200
	e.Burst(o)

	up := -math.Pi / 2
	half := o.Spread * math.Pi / 180 / 2
	for i := 0; i < e.alive; i++ {
		if d := math.Abs(e.pieces[i].angle - up); d > half+1e-9 {
			t.Fatalf("piece %d angle off by %v, want <= %v", i, d, half)
		}
	}
}

func TestBurstVelocityRange(t *testing.T) {
	e := newTestEmitter(200)
	o := DefaultBurst()
	o.ParticleCount = 200
	e.Burst(o)
	for i := 0; i < e.alive; i++ {
		v := e.pieces[i].velocity
		if v < o.StartVelocity*0.5 || v >= o.StartVelocity*1.5 {
			t.Fatalf("piece %d velocity %v outside [%v,%v)", i, v, o.StartVelocity*0.5, o.StartVelocity*1.5)
		}
	}
}

func TestBurstDropsWhenFull(t *testing.T) {
	e := newTestEmitter(30)
	o := DefaultBurst()
	o.ParticleCount = 20
	e.Burst(o)
	e.Burst(o)
	if e.AliveCount() != 30 {
		t.Errorf("alive = %d, want 30 (capped)", e.AliveCount())
	}
}

func TestBurstNegativeCount(t *testing.T) {
	e := newTestEmitter(30)
	o := DefaultBurst()
	o.ParticleCount = -5
	e.Burst(o)
	if e.AliveCount() != 0 {
		t.Errorf("alive = %d, want 0", e.AliveCount())
	}
}

func TestConfettiExpiresAfterTicks(t *testing.T) {
	e := newTestEmitter(100)
	o := DefaultBurst()
	o.ParticleCount = 40
	o.Ticks = 5
	e.Burst(o)

	for i := 0; i < 4; i++ {
		e.Update()
	}
	if e.AliveCount() != 40 {
		t.Fatalf("alive = %d after 4 ticks, want 40", e.AliveCount())
	}
	e.Update()
	if e.AliveCount() != 0 {
		t.Errorf("alive = %d after 5 ticks, want 0", e.AliveCount())
	}
}

func TestConfettiGravityPullsDown(t *testing.T) {
	e := newTestEmitter(1)
	o := DefaultBurst()
	o.ParticleCount = 1
	o.StartVelocity = 0
	e.Burst(o)
	y0 := e.pieces[0].y
	for i := 0; i < 10; i++ {
		e.Update()
	}
	if e.pieces[0].y <= y0 {
		t.Errorf("y = %v, want below start %v", e.pieces[0].y, y0)
	}
}

func TestConfettiDecaySlows(t *testing.T) {
	e := newTestEmitter(1)
	o := DefaultBurst()
	o.ParticleCount = 1
	e.Burst(o)
	v0 := e.pieces[0].velocity
	e.Update()
	if got := e.pieces[0].velocity; math.Abs(got-v0*o.Decay) > 1e-9 {
		t.Errorf("velocity = %v, want %v", got, v0*o.Decay)
	}
}

func TestBurstUsesPalette(t *testing.T) {
	e := newTestEmitter(50)
	o := DefaultBurst()
	o.Colors = []Color{ColorGold}
	e.Burst(o)
	for i := 0; i < e.alive; i++ {
		if e.pieces[i].color != ColorGold {
			t.Fatalf("piece %d color %+v, want gold", i, e.pieces[i].color)
		}
	}
}

func TestConfettiReset(t *testing.T) {
	e := newTestEmitter(50)
	e.Burst(DefaultBurst())
	e.Reset()
	if e.AliveCount() != 0 {
		t.Errorf("alive = %d, want 0 after Reset", e.AliveCount())
	}
}
