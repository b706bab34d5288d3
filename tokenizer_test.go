package kvconf

import "testing"

func TestTokenizeArg(t *testing.T) {
	tests := []struct {
		arg    string
		want   token
		wantOK bool
	}{
		{"key=value", token{key: "key", value: "value"}, true},
		{"key2=99", token{key: "key2", value: "99"}, true},
		{"ns:port=8080", token{key: "ns:port", value: "8080"}, true},
		{"my_key = spaced", token{key: "my_key", value: "spaced"}, true},
		{"key=two words", token{key: "key", value: "two"}, true},
		{"mylist={5,4,3}", token{key: "mylist", value: "{5,4,3}"}, true},
		{"url=http://host:80/x=y", token{key: "url", value: "http://host:80/x=y"}, true},
		{"--verbose", token{key: "verbose", option: true}, true},
		{"--v2  ", token{key: "v2", option: true}, true},
		{"--x=1", token{key: "x", value: "1"}, true},
		{"-a=1", token{key: "a", value: "1"}, true},

		{"key=", token{}, false},
		{"key=   ", token{}, false},
		{"=value", token{}, false},
		{"justaword", token{}, false},
		{"--", token{}, false},
		{"--no-color", token{}, false},
		{"--opt extra", token{}, false},
		{"-v", token{}, false},
		{"", token{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, ok := tokenizeArg(tt.arg)
			if ok != tt.wantOK {
				t.Fatalf("tokenizeArg(%q) ok = %v, want %v", tt.arg, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("tokenizeArg(%q) = %+v, want %+v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestTokenizeLine(t *testing.T) {
	tests := []struct {
		line   string
		want   token
		wantOK bool
	}{
		{"key_string=val", token{key: "key_string", value: "val"}, true},
		{"greeting = hello world", token{key: "greeting", value: "hello world"}, true},
		{"path=/tmp/a b  ", token{key: "path", value: "/tmp/a b"}, true},
		{"key1=42", token{key: "key1", value: "42"}, true},
		{"bad key=1", token{key: "key", value: "1"}, true},
		{"expr=a=b", token{key: "expr", value: "a=b"}, true},

		{"--verbose", token{}, false},
		{"no equals here", token{}, false},
		{"empty=", token{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := tokenizeLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("tokenizeLine(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("tokenizeLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}
