package sellerdao

// Record is a seller row. The attribute names are the Amplify-generated ones
// the mobile app provisioned; the external user id is the hash key so lookup
// is a point read and duplicate ids cannot exist.
type Record struct {
	SellerUserID string `dynamodbav:"sellersSellerUserId" ddb:"hash" json:"sellersSellerUserId"`
	ID           string `dynamodbav:"id" json:"id"`
	Name         string `dynamodbav:"name,omitempty" json:"name,omitempty"`
	CreatedAt    string `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    string `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
