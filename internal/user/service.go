package user

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

// FindOrCreate resolves a Google profile to a local account. A repeat login
// for a known google id refreshes the profile picture; a first login creates
// the account with a null seller rating. Calling it twice with the same
// google id never yields a second record.
func (s *Service) FindOrCreate(googleID, username, email, pictureURL string) (User, error) {
	existing, err := s.repo.GetByGoogleID(googleID)
	if err == nil {
		return s.repo.UpdateProfilePicture(existing.ID, pictureURL)
	}
	if err != ErrNotFound {
		return User{}, err
	}

	return s.repo.Create(User{
		GoogleID:       googleID,
		Username:       username,
		Email:          email,
		ProfilePicture: pictureURL,
	})
}
