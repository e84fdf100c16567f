package labdadosdomain

// Product é um registro de venda como devolvido pela API de produtos.
// A data ainda está em texto no formato dd/mm/aaaa.
type Product struct {
	Product      string   `json:"Produto"`
	Category     string   `json:"Categoria do Produto"`
	Price        float64  `json:"Preço"`
	Shipping     float64  `json:"Frete"`
	PurchaseDate string   `json:"Data da Compra"`
	Seller       string   `json:"Vendedor"`
	Location     string   `json:"Local da compra"`
	Rating       *float64 `json:"Avaliação da compra"`
	PaymentType  string   `json:"Tipo de pagamento"`
	Installments int      `json:"Quantidade de parcelas"`
	Latitude     float64  `json:"lat"`
	Longitude    float64  `json:"lon"`
}

type ProductsParams struct {
	Region string
	Year   string
}
