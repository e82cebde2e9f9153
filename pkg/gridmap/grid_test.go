package gridmap

import (
	"reflect"
	"testing"
)

func TestConnectionsOrder(t *testing.T) {
	g := New(3, 3)
	got := g.Node(1, 1).Connections()
	want := []Cell{g.Node(2, 1), g.Node(1, 0), g.Node(0, 1), g.Node(1, 2)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("neighbor order: got %v want %v", got, want)
	}
}

func TestBlocking(t *testing.T) {
	g := New(3, 3)
	g.Block(2, 1)

	for _, c := range g.Node(1, 1).Connections() {
		if c.X == 2 && c.Y == 1 {
			t.Fatal("blocked cell still connected")
		}
	}

	g.Unblock(2, 1)
	if len(g.Node(1, 1).Connections()) != 4 {
		t.Fatal("unblock did not restore the connection")
	}
}

func TestBounds(t *testing.T) {
	g := New(2, 2)
	corner := g.Node(0, 0)
	got := corner.Connections()
	if len(got) != 2 {
		t.Fatalf("corner has %d connections, want 2", len(got))
	}
	if g.IsOpen(-1, 0) || g.IsOpen(0, 2) {
		t.Fatal("out-of-bounds cells reported open")
	}
}

func TestPosition(t *testing.T) {
	g := New(4, 4)
	g.CellSize = 2.5
	pos := g.Node(2, 3).Position()
	if pos.X != 5 || pos.Y != 7.5 || pos.Z != 0 {
		t.Fatalf("position: %+v", pos)
	}
}
