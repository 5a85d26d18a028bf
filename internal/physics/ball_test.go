package physics

import (
	"math/rand"
	"testing"
)

func TestBallDefaults(t *testing.T) {
	b := NewBall(5, 5, rand.New(rand.NewSource(1)))

	if b.Size != 45 {
		t.Errorf("expected size 45, got %f", b.Size)
	}
	if b.Vel.X != 4.5 || b.Vel.Y != 4.5 {
		t.Errorf("expected velocity (4.5, 4.5), got %v", b.Vel)
	}
	if b.Pos != (Vec2{100, 100}) {
		t.Errorf("expected start at (100, 100), got %v", b.Pos)
	}
}

func TestBallBounceRight(t *testing.T) {
	b := NewBall(5, 5, rand.New(rand.NewSource(1)))
	start := b.Color

	bounced := false
	for i := 0; i < 100 && !bounced; i++ {
		bounced = b.Step(200, 1000)
	}
	if !bounced {
		t.Fatal("expected a bounce off the right wall")
	}

	if b.Vel.X >= 0 {
		t.Errorf("expected vx reflected, got %f", b.Vel.X)
	}
	if b.Vel.Y <= 0 {
		t.Errorf("expected vy untouched, got %f", b.Vel.Y)
	}
	if b.Pos.X != 200-b.Size/2 {
		t.Errorf("expected x clamped to %f, got %f", 200-b.Size/2, b.Pos.X)
	}
	if b.Color == start {
		t.Error("expected color to change on bounce")
	}
	if b.Bounces != 1 {
		t.Errorf("expected 1 bounce, got %d", b.Bounces)
	}
}

func TestBallWallContact(t *testing.T) {
	const w, h = 400.0, 300.0
	r := ballDiameter(5) / 2

	tests := []struct {
		name  string
		pos   Vec2
		vel   Vec2
		flipX bool
		flipY bool
	}{
		{"left wall moving left", Vec2{r, 150}, Vec2{-4.5, 0}, true, false},
		{"right wall moving right", Vec2{w - r, 150}, Vec2{4.5, 0}, true, false},
		{"top wall moving up", Vec2{200, r}, Vec2{0, -4.5}, false, true},
		{"bottom wall moving down", Vec2{200, h - r}, Vec2{0, 4.5}, false, true},
		{"corner", Vec2{r, r}, Vec2{-4.5, -4.5}, true, true},
		{"left wall moving away", Vec2{r, 150}, Vec2{4.5, 0}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(5, 5, rand.New(rand.NewSource(1)))
			b.Pos, b.Vel = tt.pos, tt.vel
			start := b.Color

			bounced := b.Step(w, h)

			if want := tt.flipX || tt.flipY; bounced != want {
				t.Fatalf("bounced = %v, want %v", bounced, want)
			}
			if flipped := b.Vel.X == -tt.vel.X && tt.vel.X != 0; flipped != tt.flipX {
				t.Errorf("vx %f from %f, want flipped=%v", b.Vel.X, tt.vel.X, tt.flipX)
			}
			if flipped := b.Vel.Y == -tt.vel.Y && tt.vel.Y != 0; flipped != tt.flipY {
				t.Errorf("vy %f from %f, want flipped=%v", b.Vel.Y, tt.vel.Y, tt.flipY)
			}
			if b.Pos.X < r || b.Pos.X > w-r || b.Pos.Y < r || b.Pos.Y > h-r {
				t.Errorf("ball left the box at %v", b.Pos)
			}
			if changed := b.Color != start; changed != bounced {
				t.Errorf("color changed=%v, bounced=%v", changed, bounced)
			}
		})
	}
}

func TestBallStaysInside(t *testing.T) {
	b := NewBall(10, 1, rand.New(rand.NewSource(7)))
	w, h := 320.0, 240.0
	r := b.Size / 2

	for i := 0; i < 2000; i++ {
		b.Step(w, h)
		if b.Pos.X < r-b.Vel.Mag() || b.Pos.X > w-r+b.Vel.Mag() {
			t.Fatalf("frame %d: x %f escaped", i, b.Pos.X)
		}
		if b.Pos.Y < r-b.Vel.Mag() || b.Pos.Y > h-r+b.Vel.Mag() {
			t.Fatalf("frame %d: y %f escaped", i, b.Pos.Y)
		}
	}
	if b.Bounces == 0 {
		t.Error("expected at least one bounce")
	}
}

func TestBallColorRange(t *testing.T) {
	b := NewBall(5, 5, rand.New(rand.NewSource(3)))
	for i := 0; i < 50; i++ {
		b.recolor()
		r, g, bl := b.Color.R*255, b.Color.G*255, b.Color.B*255
		if r < 100 || r >= 255 || g < 50 || g >= 200 || bl < 100 || bl >= 255 {
			t.Fatalf("color out of range: %f %f %f", r, g, bl)
		}
	}
}

func TestBallReconfigureKeepsHeading(t *testing.T) {
	b := NewBall(5, 5, rand.New(rand.NewSource(1)))
	b.Vel = Vec2{-4.5, 4.5}

	b.Reconfigure(1, 2)

	if b.Vel.X != -2.5 || b.Vel.Y != 2.5 {
		t.Errorf("expected (-2.5, 2.5), got %v", b.Vel)
	}
	if b.Size != 30 {
		t.Errorf("expected size 30, got %f", b.Size)
	}
}
