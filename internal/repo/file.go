package repo

import (
	"FileVault/internal/model"
	"context"

	"gorm.io/gorm"
)

// PageSize — фиксированный размер страницы листинга каталога.
const PageSize = 20

// FileRepository определяет контракт доступа к записям каталога.
// Все методы, кроме GetByID, скоупятся по владельцу.
type FileRepository interface {
	// Create вставляет новую запись. Родитель валидируется на уровне сервиса.
	Create(ctx context.Context, file *model.File) error

	// GetByID ищет запись без учёта владельца (для проверки родителя).
	GetByID(ctx context.Context, id string) (*model.File, error)

	// GetOwned возвращает запись, только если она принадлежит ownerID.
	GetOwned(ctx context.Context, id, ownerID string) (*model.File, error)

	// GetVisible возвращает запись, если она публична или принадлежит
	// requesterID. Аноним передаёт пустой requesterID.
	GetVisible(ctx context.Context, id, requesterID string) (*model.File, error)

	// ListByParent отдаёт страницу детей родителя, новые сверху.
	// page нумеруется с нуля; за пределами диапазона — пустой срез.
	ListByParent(ctx context.Context, ownerID, parentID string, page int) ([]model.File, error)

	// SetPublic атомарно выставляет видимость по ключу (id, owner).
	// Идемпотентен; не-владение — gorm.ErrRecordNotFound.
	SetPublic(ctx context.Context, id, ownerID string, isPublic bool) (*model.File, error)

	// CountFiles возвращает общее число записей каталога.
	CountFiles(ctx context.Context) (int64, error)

	// Available — живо ли подключение к БД (для /status).
	Available(ctx context.Context) bool
}

type fileRepo struct {
	db *gorm.DB
}

// NewFileRepository создаёт реализацию репозитория каталога.
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepo{db: db}
}

func (r *fileRepo) Create(ctx context.Context, file *model.File) error {
	return r.db.WithContext(ctx).Create(file).Error
}

func (r *fileRepo) GetByID(ctx context.Context, id string) (*model.File, error) {
	var f model.File
	if tx := r.db.WithContext(ctx).Where("id = ?", id).First(&f); tx.Error != nil {
		return nil, tx.Error
	}
	return &f, nil
}

func (r *fileRepo) GetOwned(ctx context.Context, id, ownerID string) (*model.File, error) {
	var f model.File
	tx := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&f)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &f, nil
}

func (r *fileRepo) GetVisible(ctx context.Context, id, requesterID string) (*model.File, error) {
	var f model.File
	tx := r.db.WithContext(ctx).
		Where("id = ? AND (is_public = ? OR user_id = ?)", id, true, requesterID).
		First(&f)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &f, nil
}

func (r *fileRepo) ListByParent(ctx context.Context, ownerID, parentID string, page int) ([]model.File, error) {
	if page < 0 {
		page = 0
	}
	files := make([]model.File, 0, PageSize)
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND parent_id = ?", ownerID, parentID).
		Order("created_at DESC").Order("id DESC").
		Offset(page * PageSize).Limit(PageSize).
		Find(&files)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return files, nil
}

// SetPublic выполняет одиночный условный UPDATE: ноль затронутых строк
// означает «нет такой записи у этого владельца».
func (r *fileRepo) SetPublic(ctx context.Context, id, ownerID string, isPublic bool) (*model.File, error) {
	tx := r.db.WithContext(ctx).Model(&model.File{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Update("is_public", isPublic)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetOwned(ctx, id, ownerID)
}

func (r *fileRepo) Available(ctx context.Context) bool {
	sqlDB, err := r.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}

func (r *fileRepo) CountFiles(ctx context.Context) (int64, error) {
	var n int64
	if tx := r.db.WithContext(ctx).Model(&model.File{}).Count(&n); tx.Error != nil {
		return 0, tx.Error
	}
	return n, nil
}
