package bootstrap

// releaseStack runs release functions in reverse acquisition order, each at most once.
type releaseStack struct {
	releases []func()
}

func (s *releaseStack) push(release func()) {
	s.releases = append(s.releases, release)
}

func (s *releaseStack) unwind() {
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}
