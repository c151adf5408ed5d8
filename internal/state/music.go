package state

// Music action types.
const (
	ActionAddTrack    ActionType = "ADD_TRACK"
	ActionRemoveTrack ActionType = "REMOVE_TRACK"
	ActionPlayTrack   ActionType = "PLAY_TRACK"
	ActionPauseMusic  ActionType = "PAUSE_MUSIC"
	ActionSetVolume   ActionType = "SET_VOLUME"
)

const defaultVolume = 0.5

// Track is a focus-music track. Playback itself happens elsewhere.
type Track struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// MusicState holds the playlist and playback selection.
type MusicState struct {
	Tracks         []Track `json:"tracks"`
	CurrentTrackID string  `json:"currentTrackId"`
	Volume         float64 `json:"volume"`

	IsPlaying bool `json:"isPlaying"`
}

func trackID(t Track) string { return t.ID }

// MusicDomain builds the music domain.
func MusicDomain(Deps) Domain[MusicState] {
	return Domain[MusicState]{
		Key: KeyMusic,
		Initial: func() MusicState {
			return MusicState{Tracks: []Track{}, Volume: defaultVolume}
		},
		Reducer: reduceMusic,
		Volatile: func(s MusicState) MusicState {
			s.IsPlaying = false
			return s
		},
		Repair: func(s MusicState) MusicState {
			s.Tracks = nonNil(s.Tracks)
			if s.Volume < 0 || s.Volume > 1 {
				s.Volume = defaultVolume
			}
			if indexOf(s.Tracks, s.CurrentTrackID, trackID) < 0 {
				s.CurrentTrackID = ""
			}
			return s
		},
	}
}

func reduceMusic(s *MusicState, a Action) (*MusicState, error) {
	switch a.Type {
	case ActionAddTrack:
		track, err := payloadAs[Track](a)
		if err != nil {
			return nil, err
		}
		if track.ID == "" {
			return nil, invalid(a, "track id is required")
		}
		next := *s
		next.Tracks = upsert(s.Tracks, track, trackID)
		return &next, nil

	case ActionRemoveTrack:
		id, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		tracks, removed := removeWhere(s.Tracks, func(t Track) bool { return t.ID == id })
		if !removed {
			return s, nil
		}
		next := *s
		next.Tracks = tracks
		if next.CurrentTrackID == id {
			next.CurrentTrackID = ""
			next.IsPlaying = false
		}
		return &next, nil

	case ActionPlayTrack:
		id, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		if id == "" {
			id = s.CurrentTrackID
		}
		if indexOf(s.Tracks, id, trackID) < 0 {
			return nil, invalid(a, "unknown track "+id)
		}
		if s.CurrentTrackID == id && s.IsPlaying {
			return s, nil
		}
		next := *s
		next.CurrentTrackID = id
		next.IsPlaying = true
		return &next, nil

	case ActionPauseMusic:
		if !s.IsPlaying {
			return s, nil
		}
		next := *s
		next.IsPlaying = false
		return &next, nil

	case ActionSetVolume:
		volume, err := payloadAs[float64](a)
		if err != nil {
			return nil, err
		}
		volume = min(max(volume, 0), 1)
		if s.Volume == volume {
			return s, nil
		}
		next := *s
		next.Volume = volume
		return &next, nil
	}

	return s, nil
}
