package geocode

import "testing"

func TestCleanAdministrative(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "ward and district collapsed",
			in:   "123 Đường Lê Lợi Phường Bến Thành Quận 1",
			want: "123 đường lê lợi, bến thành, 1",
		},
		{
			name: "city prefix collapsed",
			in:   "Chợ Bến Thành Thành Phố Hồ Chí Minh",
			want: "chợ bến thành, hồ chí minh",
		},
		{
			name: "no administrative keywords",
			in:   "42 Đồng Khởi",
			want: "42 đồng khởi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanAdministrative(tt.in); got != tt.want {
				t.Errorf("cleanAdministrative(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStreetPart(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "truncates at street keyword",
			in:   "số 5 đường nguyễn huệ, bến nghé",
			want: "đường nguyễn huệ, bến nghé",
		},
		{
			name: "alley keyword",
			in:   "hẻm 51 cao thắng, 3",
			want: "hẻm 51 cao thắng, 3",
		},
		{
			name: "no keyword leaves input unchanged",
			in:   "42 đồng khởi, bến nghé",
			want: "42 đồng khởi, bến nghé",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := streetPart(tt.in); got != tt.want {
				t.Errorf("streetPart(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLastAdminSegments(t *testing.T) {
	got, ok := lastAdminSegments("đường lê lợi, bến thành, 1", 2)
	if !ok || got != "bến thành, 1" {
		t.Errorf("lastAdminSegments() = %q, %v; want %q, true", got, ok, "bến thành, 1")
	}

	if _, ok := lastAdminSegments("đồng khởi", 2); ok {
		t.Error("expected ok=false for a single segment")
	}
}
