package array

import "testing"

func TestArray_GetSet(t *testing.T) {
	var a = Make[string](3)
	if a.Len() != 3 {
		t.Errorf("length should be 3 but now is %d", a.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if a.Get(i) != "" {
			t.Errorf("slot %d should be empty", i)
		}
	}
	a.Set(1, "b")
	if a.Get(1) != "b" {
		t.Fail()
	}
	a.Clear(1)
	if a.Get(1) != "" {
		t.Fail()
	}
}

func TestArray_OutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	var a = Make[int](2)
	a.Get(2)
}
