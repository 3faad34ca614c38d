package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Categories() CategoryRepository
	Products() ProductRepository
	Carts() CartRepository
	Users() UserRepository
	Customers() CustomerRepository
	Orders() OrderRepository
}
