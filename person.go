package clientbook

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Tier is the membership level of a person. The zero value means no membership.
type Tier string

// Membership tiers, from the lowest to the highest.
const (
	NoTier   Tier = ""
	Bronze   Tier = "bronze"
	Silver   Tier = "silver"
	Gold     Tier = "gold"
	Platinum Tier = "platinum"
)

// Tiers lists all valid membership tiers.
var Tiers = []Tier{Bronze, Silver, Gold, Platinum}

// ParseTier parses a membership tier, ignoring case.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Tiers, t) {
		return NoTier, fmt.Errorf("unknown membership %q, want one of %v", s, Tiers)
	}
	return t, nil
}

// Person is a client of the book.
//
// Persons are treated as immutable values: edits build a new Person that
// replaces the old one in the AddressBook.
type Person struct {
	Name       string
	Phone      string
	Email      string
	Address    string
	Remark     string   // optional
	Membership Tier     // optional
	Tags       []string // sorted, unique
}

// NewPerson returns a Person with normalized tags.
func NewPerson(name, phone, email, address, remark string, tier Tier, tags ...string) *Person {
	return &Person{
		Name:       name,
		Phone:      phone,
		Email:      email,
		Address:    address,
		Remark:     remark,
		Membership: tier,
		Tags:       NormalizeTags(tags),
	}
}

// NormalizeTags returns tags sorted and without duplicates.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := slices.Clone(tags)
	slices.Sort(out)
	return slices.Compact(out)
}

// Identity returns the key that makes a person unique in a book: the name with
// whitespace collapsed and case folded.
func Identity(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}

// IsSame reports whether p and o designate the same person.
func (p *Person) IsSame(o *Person) bool {
	if p == nil || o == nil {
		return p == o
	}
	return Identity(p.Name) == Identity(o.Name)
}

// HasMembership reports whether p has any membership tier.
func (p *Person) HasMembership() bool { return p.Membership != NoTier }

// HasTag reports whether p is tagged with tag.
func (p *Person) HasTag(tag string) bool {
	_, found := slices.BinarySearch(p.Tags, tag)
	return found
}

// Clone returns a deep copy of p.
func (p *Person) Clone() *Person {
	c := *p
	c.Tags = slices.Clone(p.Tags)
	return &c
}

// Equal reports whether p and o have the same values in all fields.
func (p *Person) Equal(o *Person) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Name == o.Name &&
		p.Phone == o.Phone &&
		p.Email == o.Email &&
		p.Address == o.Address &&
		p.Remark == o.Remark &&
		p.Membership == o.Membership &&
		slices.Equal(p.Tags, o.Tags)
}

func (p *Person) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Address: %s", p.Name, p.Phone, p.Email, p.Address)
	if p.Remark != "" {
		fmt.Fprintf(&b, "; Remark: %s", p.Remark)
	}
	if p.HasMembership() {
		fmt.Fprintf(&b, "; Membership: %s", p.Membership)
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, "; Tags: %s", strings.Join(p.Tags, ", "))
	}
	return b.String()
}

var (
	nameRegexp  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phoneRegexp = regexp.MustCompile(`^\d{3,}$`)
	tagRegexp   = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
	// local part: alphanumerics separated by single special characters.
	emailLocalRegexp  = regexp.MustCompile(`^[\p{L}\p{N}]+([+_.-][\p{L}\p{N}]+)*$`)
	emailDomainRegexp = regexp.MustCompile(`^([\p{L}\p{N}]([\p{L}\p{N}-]*[\p{L}\p{N}])?\.)*[\p{L}\p{N}]([\p{L}\p{N}-]*[\p{L}\p{N}])?$`)
)

// ValidateName checks a person name.
func ValidateName(s string) error {
	if !nameRegexp.MatchString(s) {
		return errors.New("names should only contain alphanumeric characters and spaces, and it should not be blank")
	}
	return nil
}

// ValidatePhone checks a phone number.
func ValidatePhone(s string) error {
	if !phoneRegexp.MatchString(s) {
		return errors.New("phone numbers should only contain numbers, and it should be at least 3 digits long")
	}
	return nil
}

// ValidateAddress checks an address.
func ValidateAddress(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("addresses can take any values, and it should not be blank")
	}
	return nil
}

// ValidateTag checks a tag name.
func ValidateTag(s string) error {
	if !tagRegexp.MatchString(s) {
		return fmt.Errorf("tag %q should be alphanumeric", s)
	}
	return nil
}

// ValidateEmail checks an email address of the form local-part@domain.
func ValidateEmail(s string) error {
	local, domain, ok := strings.Cut(s, "@")
	switch {
	case !ok || strings.Contains(domain, "@"):
		return fmt.Errorf("email %q should be of the format local-part@domain", s)
	case !emailLocalRegexp.MatchString(local):
		return fmt.Errorf("email %q: local-part should only contain alphanumeric characters and +_.-, and cannot start or end with a special character", s)
	case !emailDomainRegexp.MatchString(domain):
		return fmt.Errorf("email %q: domain should be made of labels separated by periods", s)
	}
	labels := strings.Split(domain, ".")
	if len([]rune(labels[len(labels)-1])) < 2 {
		return fmt.Errorf("email %q: domain should end with a label at least 2 characters long", s)
	}
	return nil
}

// Validate checks all fields of p.
func (p *Person) Validate() error {
	errs := []error{
		ValidateName(p.Name),
		ValidatePhone(p.Phone),
		ValidateEmail(p.Email),
		ValidateAddress(p.Address),
	}
	if p.Membership != NoTier && !slices.Contains(Tiers, p.Membership) {
		errs = append(errs, fmt.Errorf("unknown membership %q", p.Membership))
	}
	for _, tag := range p.Tags {
		errs = append(errs, ValidateTag(tag))
	}
	return errors.Join(errs...)
}
