package leads

// Status is the pipeline state of a lead.
type Status string

// Lead status options.
const (
	StatusNew          Status = "New"
	StatusContacted    Status = "Contacted"
	StatusQualified    Status = "Qualified"
	StatusLostSale     Status = "Lost Sale"
	StatusSold         Status = "Sold"
	StatusDisqualified Status = "Disqualified"
	StatusUnreachable  Status = "Unreachable"
)

// StatusOptions returns all lead status options in display order.
func StatusOptions() []Status {
	return []Status{
		StatusNew, StatusContacted, StatusQualified, StatusLostSale,
		StatusSold, StatusDisqualified, StatusUnreachable,
	}
}

// Valid reports whether the status is one of the known options.
func (s Status) Valid() bool {
	for _, opt := range StatusOptions() {
		if s == opt {
			return true
		}
	}
	return false
}

func (s Status) String() string { return string(s) }

// InterestStatus is the expressed interest level of a lead.
type InterestStatus string

// Interest status options.
const (
	Interested    InterestStatus = "Interested"
	Holding       InterestStatus = "Holding"
	NotInterested InterestStatus = "Not Interested"
	InterestNA    InterestStatus = "N/A"
)

// InterestOptions returns all interest status options in display order.
func InterestOptions() []InterestStatus {
	return []InterestStatus{Interested, Holding, NotInterested, InterestNA}
}

// Valid reports whether the interest status is one of the known options.
func (s InterestStatus) Valid() bool {
	for _, opt := range InterestOptions() {
		if s == opt {
			return true
		}
	}
	return false
}

func (s InterestStatus) String() string { return string(s) }

// Source is the acquisition channel of a lead.
type Source string

// Lead source options.
const (
	SourceGoogleAds     Source = "Google Ads"
	SourceFacebook      Source = "Facebook"
	SourceInstagram     Source = "Instagram"
	SourceLinkedIn      Source = "LinkedIn"
	SourceWebsites      Source = "Websites"
	SourceOfflineEvents Source = "Offline Events"
	SourceOther         Source = "Other"
)

// SourceOptions returns all lead source options in display order.
func SourceOptions() []Source {
	return []Source{
		SourceGoogleAds, SourceFacebook, SourceInstagram, SourceLinkedIn,
		SourceWebsites, SourceOfflineEvents, SourceOther,
	}
}

// Valid reports whether the source is one of the known options.
func (s Source) Valid() bool {
	for _, opt := range SourceOptions() {
		if s == opt {
			return true
		}
	}
	return false
}

func (s Source) String() string { return string(s) }

// Defaults applied during normalization for fields that must never be
// empty in the working table.
const (
	DefaultOwner    = "Unassigned"
	DefaultSource   = SourceOther
	DefaultInterest = InterestNA
)
