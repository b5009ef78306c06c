package orderdto

type CreateOrderInput struct {
	Name               string
	Description        string
	ProductURL         string
	ProductImage       string
	ProductCount       int
	SourceLocation     string
	ProductDescription string
}
