package usuario

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de usuários.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo usuário.
func (r *Repository) Create(u *Usuario) error {
	return r.DB.Create(u).Error
}

// FindByLogin busca um usuário pelo login.
func (r *Repository) FindByLogin(login string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.Where("login = ?", login).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID busca um usuário pelo ID.
func (r *Repository) FindByID(id uint) (*Usuario, error) {
	var u Usuario
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListarTodos retorna todos os usuários.
func (r *Repository) ListarTodos() ([]Usuario, error) {
	var usuarios []Usuario
	err := r.DB.Order("nome ASC").Find(&usuarios).Error
	return usuarios, err
}

// Count retorna a quantidade de usuários cadastrados.
func (r *Repository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&Usuario{}).Count(&n).Error
	return n, err
}
