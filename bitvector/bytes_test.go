package bitvector

import (
	"bytes"
	"testing"
)

func TestBytes_PartialByte(t *testing.T) {
	v := New()
	v.Extend([]bool{true, false, true})

	it := v.Bytes()
	b, ok := it.Next()
	if !ok {
		t.Fatal("Next on a 3-bit vector reported exhausted")
	}
	if b != 0b101 {
		t.Errorf("wrong byte: expect %#08b, actual %#08b", 0b101, b)
	}
	if _, ok := it.Next(); ok {
		t.Error("Next after the last byte reported ok")
	}
	if _, ok := it.Next(); ok {
		t.Error("exhausted iterator restarted")
	}
}

func TestBytes_NinthBit(t *testing.T) {
	v := New()
	v.Extend([]bool{true, false, true, false, true, false, true, false, true})

	actual := v.AppendTo(nil)
	expect := []byte{0b01010101, 0b00000001}
	if !bytes.Equal(expect, actual) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}
}

func TestBytes_CrossWordBoundary(t *testing.T) {
	// 70 bits, all ones: eight full bytes and one 6-bit tail whose
	// two high-order positions must come back zeroed.
	v := New()
	for index := 0; index < 70; index++ {
		v.Push(false)
	}
	v.Fill(true)

	actual := v.AppendTo(nil)
	expect := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x3f}
	if !bytes.Equal(expect, actual) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}
}

func TestBytes_Empty(t *testing.T) {
	if actual := New().AppendTo(nil); len(actual) != 0 {
		t.Errorf("wrong bytes: expect none, actual %#v", actual)
	}
}
