package constants

import "testing"

func TestParseQualStatus(t *testing.T) {
	cases := []struct {
		in     string
		want   QualStatus
		wantOK bool
	}{
		{"FMQ", StatusFMQ, true},
		{"fmq", StatusFMQ, true},
		{" fmq ", StatusFMQ, true},
		{"Mqt", StatusMQT, true},
		{"NMQ", StatusNMQ, true},
		{"ip", StatusIP, true},
		{"", "", false},
		{"SUPERSONIC", "", false},
		{"F M Q", "", false},
	}
	for _, c := range cases {
		got, ok := ParseQualStatus(c.in)
		if ok != c.wantOK || got != c.want {
			t.Errorf("ParseQualStatus(%q) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestQualStatusQualified(t *testing.T) {
	if StatusNMQ.Qualified() || StatusMQT.Qualified() {
		t.Error("NMQ and MQT must not count as qualified")
	}
	if !StatusFMQ.Qualified() || !StatusIP.Qualified() {
		t.Error("FMQ and IP must count as qualified")
	}
}

func TestQualStatusRankOrdering(t *testing.T) {
	if !(StatusNMQ.Rank() < StatusMQT.Rank() && StatusMQT.Rank() < StatusFMQ.Rank()) {
		t.Error("Expected NMQ < MQT < FMQ by rank")
	}
	if QualStatus("bogus").Rank() != -1 {
		t.Error("Expected unknown status to rank -1")
	}
}

func TestRoleCanWrite(t *testing.T) {
	if RolePilot.CanWrite() {
		t.Error("pilot must not have write access")
	}
	if !RoleInstructor.CanWrite() || !RoleAdmin.CanWrite() {
		t.Error("instructor and admin must have write access")
	}
}
