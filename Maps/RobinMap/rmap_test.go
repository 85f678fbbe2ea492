package RobinMap

import (
	"math/rand"
	"testing"
)

func TestRobinMap_All(t *testing.T) {
	M := NewComparable[int, string](0, 0)
	M.Store(1, "a")
	M.Store(2, "b")
	if v, ok := M.Load(1); !ok || v != "a" {
		t.Error("wrong load 1", v)
	}
	M.Store(1, "c")
	if v, _ := M.Load(1); v != "c" {
		t.Error("store didn't overwrite", v)
	}
	if M.Size() != 2 {
		t.Error("wrong size", M.Size())
	}
	if !M.Remove(2) {
		t.Error("wrong remove 1")
	}
	if M.Remove(2) {
		t.Error("wrong remove 2")
	}
	if M.HasKey(2) {
		t.Error("removed key still present")
	}
	if _, ok := M.Load(2); ok {
		t.Error("wrong load 2")
	}
	n := 0
	M.Range(func(k int, v string) bool {
		if k != 1 || v != "c" {
			t.Error("wrong entry", k, v)
		}
		n++
		return true
	})
	if n != 1 {
		t.Error("wrong range count", n)
	}
}

func TestRobinMap_Grow(t *testing.T) {
	M := NewComparable[int, int](0, 0)
	for i := 0; i < 1000; i++ {
		M.Store(i, i*i)
	}
	if M.Size() != 1000 {
		t.Error("wrong size", M.Size())
	}
	for i := 0; i < 1000; i++ {
		if v, ok := M.Load(i); !ok || v != i*i {
			t.Error("wrong value after growth", i, v)
		}
	}
}

func TestRobinMap_Random(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	M := NewComparable[int, int](0, 9)
	ref := make(map[int]int)
	for i := 0; i < 10000; i++ {
		k := rg.Intn(256)
		switch rg.Intn(3) {
		case 0:
			v := rg.Int()
			M.Store(k, v)
			ref[k] = v
		case 1:
			if _, ok := ref[k]; M.Remove(k) != ok {
				t.Fatal("remove disagrees on", k)
			}
			delete(ref, k)
		default:
			v, ok := M.Load(k)
			rv, rok := ref[k]
			if ok != rok || v != rv {
				t.Fatal("load disagrees on", k, v, rv)
			}
		}
	}
	if M.Size() != uint(len(ref)) {
		t.Error("size drifted", M.Size(), len(ref))
	}
}

func TestRobinMap_Take(t *testing.T) {
	M := NewComparable[int, string](0, 0)
	if k, v := M.Take(); k != 0 || v != "" {
		t.Error("take on empty map should be zero")
	}
	M.Store(3, "x")
	if k, v := M.Take(); k != 3 || v != "x" {
		t.Error("wrong take", k, v)
	}
}
