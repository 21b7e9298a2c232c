package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func alternatives(t *testing.T, filter bson.M) []bson.M {
	t.Helper()
	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("expected $or filter, got %v", filter)
	}
	return or
}

func TestBuildSearchFilter_TextQuery(t *testing.T) {
	or := alternatives(t, BuildSearchFilter("hendon"))

	if len(or) != 2 {
		t.Fatalf("expected 2 alternatives for a text query, got %d", len(or))
	}

	topic, ok := or[0]["topic"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected a regex alternative on topic, got %v", or[0])
	}
	if topic.Pattern != "hendon" || topic.Options != "i" {
		t.Errorf("expected case-insensitive 'hendon' pattern, got %+v", topic)
	}

	if _, ok := or[1]["location"].(primitive.Regex); !ok {
		t.Errorf("expected a regex alternative on location, got %v", or[1])
	}
}

func TestBuildSearchFilter_NumericQuery(t *testing.T) {
	or := alternatives(t, BuildSearchFilter("100"))

	if len(or) != 4 {
		t.Fatalf("expected 4 alternatives for a numeric query, got %d", len(or))
	}

	// Numeric queries add exact equality, never pattern matching
	if or[2]["price"] != 100.0 {
		t.Errorf("expected exact price equality 100, got %v", or[2])
	}
	if or[3]["space"] != 100.0 {
		t.Errorf("expected exact space equality 100, got %v", or[3])
	}
}

func TestBuildSearchFilter_EscapesMetacharacters(t *testing.T) {
	or := alternatives(t, BuildSearchFilter("c++"))

	topic := or[0]["topic"].(primitive.Regex)
	if topic.Pattern != `c\+\+` {
		t.Errorf("expected metacharacters to be escaped, got %q", topic.Pattern)
	}
}
