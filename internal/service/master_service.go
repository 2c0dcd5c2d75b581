package service

import (
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/model"
	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/repository"
)

// MasterService exposes the securities master.
type MasterService struct {
	securityRepo *repository.SecurityRepository
}

// NewMasterService creates a new MasterService with the provided repository dependency.
func NewMasterService(securityRepo *repository.SecurityRepository) *MasterService {
	return &MasterService{securityRepo: securityRepo}
}

// ListSecurities returns all master entries ordered by identifier.
func (s *MasterService) ListSecurities() ([]model.SecurityRecord, error) {
	return s.securityRepo.List()
}
