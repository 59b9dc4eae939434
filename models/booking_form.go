package models

// BookingForm carries the customer-entered event and contact details of a
// booking, plus the admin overrides that alter pricing.
type BookingForm struct {
	EventName       string `bson:"event_name" json:"eventName"`
	CompanyName     string `bson:"company_name,omitempty" json:"companyName,omitempty"`
	EventLocation   string `bson:"event_location" json:"eventLocation"`
	EventDate       string `bson:"event_date" json:"eventDate"`
	ServiceTime     string `bson:"service_time,omitempty" json:"serviceTime,omitempty"`
	GuestCount      int    `bson:"guest_count" json:"guestCount"`
	ContactName     string `bson:"contact_name" json:"contactName"`
	PhoneNumber     string `bson:"phone_number" json:"phoneNumber"`
	EmailAddress    string `bson:"email_address" json:"emailAddress"`
	AdditionalNotes string `bson:"additional_notes,omitempty" json:"additionalNotes,omitempty"`

	TaxExemptStatus  bool `bson:"tax_exempt_status" json:"taxExemptStatus"`
	WaiveServiceFee  bool `bson:"waive_service_fee" json:"waiveServiceFee"`
	AddBackupContact bool `bson:"add_backup_contact" json:"addBackupContact"`

	// Group-order variant: these substitute for the contact block when the
	// booking is a shared group order.
	IsGroupOrder    bool     `bson:"is_group_order,omitempty" json:"isGroupOrder,omitempty"`
	BudgetPerPerson float64  `bson:"budget_per_person,omitempty" json:"budgetPerPerson,omitempty"`
	Budget          float64  `bson:"budget,omitempty" json:"budget,omitempty"`
	SelectItem      string   `bson:"select_item,omitempty" json:"selectItem,omitempty"`
	Quantity        float64  `bson:"quantity,omitempty" json:"quantity,omitempty"`
	OrderDeadline   string   `bson:"order_deadline,omitempty" json:"orderDeadline,omitempty"`
	InviteFriends   []string `bson:"invite_friends,omitempty" json:"inviteFriends,omitempty"`
	PaymentSettings string   `bson:"payment_settings,omitempty" json:"paymentSettings,omitempty"`
}
