package match

import (
	"errors"
	"testing"
)

func TestValidateGames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		games   []GameScore
		wantErr error
	}{
		{
			name:  "home sweep",
			games: []GameScore{{Home: 11, Away: 9}, {Home: 11, Away: 7}},
		},
		{
			name:  "away wins best of three",
			games: []GameScore{{Home: 11, Away: 9}, {Home: 8, Away: 11}, {Home: 9, Away: 11}},
		},
		{
			name:    "empty sequence",
			games:   nil,
			wantErr: ErrNoGames,
		},
		{
			name:    "tied game",
			games:   []GameScore{{Home: 10, Away: 10}},
			wantErr: ErrTiedGame,
		},
		{
			name:    "even split",
			games:   []GameScore{{Home: 11, Away: 9}, {Home: 9, Away: 11}},
			wantErr: ErrNoStrictWinner,
		},
		{
			name:    "tie hidden behind decided games",
			games:   []GameScore{{Home: 11, Away: 9}, {Home: 5, Away: 5}, {Home: 11, Away: 3}},
			wantErr: ErrTiedGame,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateGames(tc.games)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ValidateGames() err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestWinner(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		games []GameScore
		want  Side
	}{
		{
			name:  "home majority",
			games: []GameScore{{Home: 11, Away: 9}, {Home: 9, Away: 11}, {Home: 11, Away: 5}},
			want:  SideHome,
		},
		{
			name:  "away majority",
			games: []GameScore{{Home: 9, Away: 11}, {Home: 11, Away: 9}, {Home: 7, Away: 11}},
			want:  SideAway,
		},
		{
			name:  "single game decides",
			games: []GameScore{{Home: 3, Away: 11}},
			want:  SideAway,
		},
		{
			name:  "five game thriller",
			games: []GameScore{{Home: 11, Away: 9}, {Home: 9, Away: 11}, {Home: 11, Away: 8}, {Home: 6, Away: 11}, {Home: 12, Away: 10}},
			want:  SideHome,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Winner(tc.games); got != tc.want {
				t.Fatalf("Winner() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestMatchValidate(t *testing.T) {
	t.Parallel()

	m := Match{HomeID: 1, AwayID: 1, Games: []GameScore{{Home: 11, Away: 9}}}
	if err := m.Validate(); !errors.Is(err, ErrSamePlayer) {
		t.Fatalf("Validate() err = %v, want ErrSamePlayer", err)
	}

	m.AwayID = 2
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() err = %v, want nil", err)
	}
}
