package product

// Service orchestrates catalog operations and enforces listing ownership.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) ListBySeller(sellerID int) ([]Product, error) {
	return s.repo.ListBySeller(sellerID)
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	if p.Status == "" {
		p.Status = StatusAvailable
	}
	return s.repo.Create(p)
}

// UpdateStatus mutates a listing's status on behalf of callerID. Existence is
// checked before ownership, so a missing listing is ErrNotFound and a foreign
// one is ErrForbidden.
func (s *Service) UpdateStatus(id, callerID int, status string) (Product, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Product{}, err
	}
	if existing.SellerID != callerID {
		return Product{}, ErrForbidden
	}

	return s.repo.UpdateStatus(id, status)
}

// Delete removes a listing on behalf of callerID, with the same
// existence-then-ownership ladder as UpdateStatus.
func (s *Service) Delete(id, callerID int) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing.SellerID != callerID {
		return ErrForbidden
	}

	return s.repo.Delete(id)
}
