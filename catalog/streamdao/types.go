package streamdao

// Record is a seller's stream configuration row. Attribute names match the
// table the mobile app provisioned. SellerId is the hash key; channelArn has
// its own GSI so playback viewers can resolve the seller's Stripe account
// from the channel they are watching.
type Record struct {
	SellerID               string `dynamodbav:"SellerId" ddb:"hash" json:"SellerId"`
	ChannelARN             string `dynamodbav:"channelArn" ddb:"gsi_hash:ChannelArnIndex" json:"channelArn"`
	IngestServer           string `dynamodbav:"awsIVSIngestServer" json:"awsIVSIngestServer"`
	PlaybackURL            string `dynamodbav:"awsIVSPlaybackURL" json:"awsIVSPlaybackURL"`
	StreamKey              string `dynamodbav:"awsIVSStreamKey" json:"awsIVSStreamKey"`
	ChatRoomARN            string `dynamodbav:"chatRoomArn" json:"chatRoomArn"`
	StripeConnectAccountID string `dynamodbav:"stripeConnectAccountId" json:"stripeConnectAccountId"`
}
