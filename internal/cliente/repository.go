package cliente

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de clientes.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo cliente.
func (r *Repository) Create(c *Cliente) error {
	return r.DB.Create(c).Error
}

// FindByID busca um cliente pelo ID, com seus contratos.
func (r *Repository) FindByID(id uint) (*Cliente, error) {
	var c Cliente
	if err := r.DB.Preload("Contratos").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListarTodos retorna todos os clientes, por nome.
func (r *Repository) ListarTodos() ([]Cliente, error) {
	var clientes []Cliente
	err := r.DB.Order("nome ASC").Find(&clientes).Error
	return clientes, err
}

// Count retorna a quantidade de clientes cadastrados.
func (r *Repository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&Cliente{}).Count(&n).Error
	return n, err
}

// Update salva alterações de um cliente existente.
func (r *Repository) Update(c *Cliente) error {
	return r.DB.Save(c).Error
}
