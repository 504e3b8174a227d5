package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"pricna/internal/domain"
)

type InquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

type inquiryModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Type      string    `gorm:"column:type;index"`
	ItemName  *string   `gorm:"column:item_name"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Phone     *string   `gorm:"column:phone"`
	Service   *string   `gorm:"column:service"`
	Message   string    `gorm:"column:message"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (inquiryModel) TableName() string { return "inquiries" }

func InquiryModels() []any {
	return []any{&inquiryModel{}}
}

func toDomainInquiry(m inquiryModel) *domain.Inquiry {
	deref := func(p *string) string {
		if p != nil {
			return *p
		}
		return ""
	}

	return &domain.Inquiry{
		ID:        m.ID,
		Type:      domain.InquiryType(m.Type),
		ItemName:  deref(m.ItemName),
		Name:      m.Name,
		Email:     m.Email,
		Phone:     deref(m.Phone),
		Service:   deref(m.Service),
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func toInquiryModel(i *domain.Inquiry) inquiryModel {
	ref := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	return inquiryModel{
		ID:        i.ID,
		Type:      string(i.Type),
		ItemName:  ref(i.ItemName),
		Name:      i.Name,
		Email:     i.Email,
		Phone:     ref(i.Phone),
		Service:   ref(i.Service),
		Message:   i.Message,
		CreatedAt: i.CreatedAt,
	}
}

func (repo *InquiryRepository) Create(ctx context.Context, i *domain.Inquiry) error {
	m := toInquiryModel(i)
	if err := repo.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*i = *toDomainInquiry(m)
	return nil
}

func (repo *InquiryRepository) GetAll(ctx context.Context) ([]domain.Inquiry, error) {
	var models []inquiryModel
	tx := repo.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return inquiryList(models), nil
}

func (repo *InquiryRepository) GetByType(ctx context.Context, t domain.InquiryType) ([]domain.Inquiry, error) {
	var models []inquiryModel
	tx := repo.db.WithContext(ctx).
		Where("type = ?", string(t)).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return inquiryList(models), nil
}

func inquiryList(models []inquiryModel) []domain.Inquiry {
	out := make([]domain.Inquiry, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainInquiry(m))
	}
	return out
}
