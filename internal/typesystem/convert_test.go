package typesystem

import "testing"

func TestConvertIdentityAndError(t *testing.T) {
	if got := Convert(Number, KindNumber); got.Kind != KindNumber {
		t.Fatalf("got %+v", got)
	}
	if got := Convert(Err, KindNumber); got.Kind != KindError {
		t.Fatalf("got %+v", got)
	}
	if got := Convert(Unknown, KindTable); got.Kind != KindTable {
		t.Fatalf("got %+v", got)
	}
}

func TestConvertToBooleanAlwaysSucceeds(t *testing.T) {
	for _, ti := range []TypeInfo{Number, String, Boolean, NewTable(), NewUserdata("X")} {
		if got := Convert(ti, KindBoolean); got.Kind != KindBoolean {
			t.Errorf("Convert(%+v, boolean) = %+v", ti, got)
		}
	}
}

func TestConvertNumberStringMutual(t *testing.T) {
	if got := Convert(Number, KindString); got.Kind != KindString {
		t.Fatalf("got %+v", got)
	}
	if got := Convert(String, KindNumber); got.Kind != KindNumber {
		t.Fatalf("got %+v", got)
	}
}

func TestConvertOtherCrossKindIsError(t *testing.T) {
	if got := Convert(NewTable(), KindNumber); got.Kind != KindError {
		t.Fatalf("got %+v", got)
	}
	if got := Convert(Boolean, KindTable); got.Kind != KindError {
		t.Fatalf("got %+v", got)
	}
}

func TestConvertIdempotentAndReflexive(t *testing.T) {
	cases := []TypeInfo{Number, String, Boolean, NewTable(), NewUserdata("X"), Thread}
	for _, ti := range cases {
		if got := Convert(ti, ti.Kind); !got.Equal(ti) {
			t.Errorf("Convert(%+v, %v) = %+v, want reflexive", ti, ti.Kind, got)
		}
	}
	if got := Convert(Err, KindNumber); got.Kind != KindError {
		t.Fatalf("got %+v", got)
	}
	if got := Convert(Err, KindBoolean); got.Kind != KindError {
		t.Fatalf("got %+v", got)
	}
}
