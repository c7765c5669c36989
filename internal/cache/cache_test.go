package cache

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](0, nil)
	if _, ok := c.Get("a"); ok {
		t.Fatal("empty cache returned a value")
	}
	c.Set("a", 1)
	c.Set("b", 2)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v", v, ok)
	}
	c.Set("a", 3)
	if v, _ := c.Get("a"); v != 3 {
		t.Errorf("Get(a) after replace = %d", v)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCacheContains(t *testing.T) {
	c := New[string, int](2, nil)
	c.Set("a", 1)
	c.Set("b", 2)
	if !c.Contains("a") || c.Contains("z") {
		t.Error("Contains reported the wrong keys")
	}
	if st := c.Stats(); st.Hits != 0 || st.Misses != 0 {
		t.Errorf("Contains changed stats: %+v", st)
	}
	// a stays least recently used despite the Contains call.
	c.Set("c", 3)
	if c.Contains("a") {
		t.Error("a should have been evicted")
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2, nil)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s should still be cached", k)
		}
	}
	if s := c.Stats(); s.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", s.Evictions)
	}
}

func TestCacheWeightBudget(t *testing.T) {
	weigh := func(s []int) int { return len(s) }
	c := New[string, []int](10, weigh)

	c.Set("small", make([]int, 3))
	c.Set("medium", make([]int, 5))
	if s := c.Stats(); s.Weight != 8 || s.Len != 2 {
		t.Fatalf("Stats = %+v, want weight 8 in 2 entries", s)
	}

	c.Set("large", make([]int, 6))
	if _, ok := c.Get("small"); ok {
		t.Error("small should have been evicted")
	}
	if _, ok := c.Get("medium"); ok {
		t.Error("medium should have been evicted")
	}
	if s := c.Stats(); s.Weight != 6 {
		t.Errorf("Weight = %d, want 6", s.Weight)
	}
}

func TestCacheKeepsOversizedNewest(t *testing.T) {
	c := New[string, []int](4, func(s []int) int { return len(s) })
	c.Set("a", make([]int, 2))
	c.Set("huge", make([]int, 100))
	if _, ok := c.Get("huge"); !ok {
		t.Error("newest entry must be kept")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[int, string](0, nil)
	calls := 0
	create := func() (string, error) {
		calls++
		return "v", nil
	}
	for i := 0; i < 3; i++ {
		v, err := c.GetOrCreate(1, create)
		if err != nil || v != "v" {
			t.Fatalf("GetOrCreate = %q, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Hits/Misses = %d/%d, want 2/1", s.Hits, s.Misses)
	}
	if s.HitRate < 0.66 || s.HitRate > 0.67 {
		t.Errorf("HitRate = %v", s.HitRate)
	}
}

func TestCacheGetOrCreateError(t *testing.T) {
	c := New[int, string](0, nil)
	boom := errors.New("boom")
	if _, err := c.GetOrCreate(1, func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Error("failed create must not be stored")
	}
}

func TestCacheDeleteClear(t *testing.T) {
	c := New[string, int](0, func(v int) int { return v })
	c.Set("a", 5)
	c.Set("b", 7)
	if !c.Delete("a") {
		t.Error("Delete(a) = false")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true")
	}
	if s := c.Stats(); s.Weight != 7 {
		t.Errorf("Weight = %d, want 7", s.Weight)
	}
	c.Clear()
	if s := c.Stats(); s.Len != 0 || s.Weight != 0 {
		t.Errorf("after Clear: %+v", s)
	}
	if c.Budget() != 0 {
		t.Errorf("Budget() = %d", c.Budget())
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](16, nil)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := strconv.Itoa(i % 32)
				_, _ = c.GetOrCreate(key, func() (int, error) { return i, nil })
				c.Get(key)
			}
		}()
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len() = %d, exceeds budget", c.Len())
	}
}

func TestLRUList(t *testing.T) {
	var l lruList[int]
	n1 := l.PushFront(1)
	l.PushFront(2)
	n3 := l.PushFront(3)
	if k, _ := l.Oldest(); k != 1 {
		t.Errorf("Oldest = %d, want 1", k)
	}
	l.MoveToFront(n1)
	if k, _ := l.Oldest(); k != 2 {
		t.Errorf("Oldest after move = %d, want 2", k)
	}
	l.Remove(n3)
	l.MoveToFront(n1)
	if l.Len() != 2 {
		t.Errorf("Len = %d, want 2", l.Len())
	}
	var empty lruList[int]
	if _, ok := empty.Oldest(); ok {
		t.Error("empty list has an oldest key")
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := New[string, int](1000, nil)
	for i := 0; i < 100; i++ {
		c.Set(strconv.Itoa(i), i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("50")
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[string, int](64, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.GetOrCreate(strconv.Itoa(i%100), func() (int, error) { return i, nil })
	}
}
