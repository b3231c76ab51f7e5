package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Contractual flag values.
const (
	ContractualYes = "Y"
	ContractualNo  = "N"
)

var (
	ErrDateOfBirthTooEarly = errors.New("date of birth cannot be earlier than year 1900")
	ErrUnderMinimumAge     = errors.New("employee must be at least 18 years old")
)

// EmpPersonal is the wide employee personal-information record. Every column
// except the surrogate key is nullable; emp_code is the business key but
// carries no uniqueness constraint in the legacy schema. Several column names
// keep the legacy schema's spelling (employement, parmanent, pasport).
type EmpPersonal struct {
	EmpID uint64 `gorm:"column:emp_id;primaryKey;autoIncrement" json:"emp_id"`

	EmpCode *string `gorm:"column:emp_code;size:10" json:"emp_code"`
	EmpName *string `gorm:"column:emp_name;size:64" json:"emp_name"`
	CardNo  *string `gorm:"column:card_no;size:10" json:"card_no"`

	FatherName  *string `gorm:"column:father_name;size:36" json:"father_name"`
	MotherName  *string `gorm:"column:mother_name;size:32" json:"mother_name"`
	HusbandName *string `gorm:"column:husband_name;size:32" json:"husband_name"`

	DateOfBirth   *time.Time `gorm:"column:date_of_birth;type:date" json:"date_of_birth"`
	Sex           *string    `gorm:"column:sex;size:6" json:"sex"`
	Religion      *string    `gorm:"column:religion;size:10" json:"religion"`
	BloodGroup    *string    `gorm:"column:blood_group;size:4" json:"blood_group"`
	MaritalStatus *string    `gorm:"column:marital_status;size:8" json:"marital_status"`

	ChildMale   *int `gorm:"column:child_male" json:"child_male"`
	ChildFemale *int `gorm:"column:child_female" json:"child_female"`

	ContactNo     *string `gorm:"column:contact_no;size:30" json:"contact_no"`
	EmergencyCell *string `gorm:"column:emergency_cell;size:30" json:"emergency_cell"`

	TownOfBirth        *string `gorm:"column:town_of_birth;size:30" json:"town_of_birth"`
	NationalID         *string `gorm:"column:national_id;size:20" json:"national_id"`
	BirthCertificateNo *string `gorm:"column:birth_certificate_no;size:20" json:"birth_certificate_no"`

	Contractual string  `gorm:"column:contractual;size:1;default:N" json:"contractual"`
	EMail       *string `gorm:"column:e_mail;size:32" json:"e_mail"`

	Education     *string `gorm:"column:education;size:32" json:"education"`
	Employement   *string `gorm:"column:employement;size:12" json:"employement"`
	NomineeCellNo *string `gorm:"column:nominee_cell_no;size:15" json:"nominee_cell_no"`

	PreHouseOwner *string `gorm:"column:pre_house_owner;size:32" json:"pre_house_owner"`

	PresentVill    *string `gorm:"column:present_vill;size:48" json:"present_vill"`
	PresentHouse   *string `gorm:"column:present_house;size:36" json:"present_house"`
	PresentPS      *string `gorm:"column:present_ps;size:32" json:"present_ps"`
	PresentDist    *string `gorm:"column:present_dist;size:32" json:"present_dist"`
	PresentAddress *string `gorm:"column:present_address;size:96" json:"present_address"`

	ParmanentHouse   *string `gorm:"column:parmanent_house;size:48" json:"parmanent_house"`
	ParmanentVill    *string `gorm:"column:parmanent_vill;size:36" json:"parmanent_vill"`
	ParmanentPS      *string `gorm:"column:parmanent_ps;size:32" json:"parmanent_ps"`
	ParmanentDist    *string `gorm:"column:parmanent_dist;size:32" json:"parmanent_dist"`
	PermanentAddress *string `gorm:"column:permanent_address;size:96" json:"permanent_address"`

	ParmenentAddress *string `gorm:"column:parmenent_address;size:40" json:"parmenent_address"`

	BangEmpName     *string `gorm:"column:bang_emp_name;size:64" json:"bang_emp_name"`
	BangFatherName  *string `gorm:"column:bang_father_name;size:32" json:"bang_father_name"`
	BangMotherName  *string `gorm:"column:bang_mother_name;size:32" json:"bang_mother_name"`
	BangHusbandName *string `gorm:"column:bang_husband_name;size:32" json:"bang_husband_name"`

	PreHouseOwnerBang *string `gorm:"column:pre_house_owner_bang;size:48" json:"pre_house_owner_bang"`
	BangPresentVill   *string `gorm:"column:bang_present_vill;size:48" json:"bang_present_vill"`
	BangPresentPost   *string `gorm:"column:bang_present_post;size:36" json:"bang_present_post"`
	BangPresentPS     *string `gorm:"column:bang_present_ps;size:32" json:"bang_present_ps"`
	BangPresentDist   *string `gorm:"column:bang_present_dist;size:32" json:"bang_present_dist"`

	BangPermanentVill *string `gorm:"column:bang_permanent_vill;size:48" json:"bang_permanent_vill"`
	BangPermanentPost *string `gorm:"column:bang_permanent_post;size:36" json:"bang_permanent_post"`
	BangPermanentPS   *string `gorm:"column:bang_permanent_ps;size:32" json:"bang_permanent_ps"`
	BangPermanentDist *string `gorm:"column:bang_permanent_dist;size:32" json:"bang_permanent_dist"`

	PhotoAddedBy *int64 `gorm:"column:photo_added_by" json:"photo_added_by"`

	EmpPhoto     *string `gorm:"column:emp_photo;size:100" json:"emp_photo"`
	EmpSignature *string `gorm:"column:emp_signature;size:100" json:"emp_signature"`

	PhotoAddedDate *time.Time `gorm:"column:photo_added_date;type:date" json:"photo_added_date"`

	Remarks *string `gorm:"column:remarks;size:48" json:"remarks"`

	UpdatedBy   *int64     `gorm:"column:updated_by" json:"updated_by"`
	UpdatedDate *time.Time `gorm:"column:updated_date;type:date" json:"updated_date"`

	PresentPostalCode   *string `gorm:"column:present_postal_code;size:6" json:"present_postal_code"`
	PermanentPostalCode *string `gorm:"column:permanent_postal_code;size:6" json:"permanent_postal_code"`

	PassedYear   *string `gorm:"column:passed_year;size:32" json:"passed_year"`
	LastExp      *string `gorm:"column:last_exp;size:32" json:"last_exp"`
	CurrActivity *string `gorm:"column:curr_activity;size:32" json:"curr_activity"`
	Sob          *string `gorm:"column:sob;size:32" json:"sob"`

	Nationality *string `gorm:"column:nationality;size:32" json:"nationality"`
	SmartID     *string `gorm:"column:smart_id;size:16" json:"smart_id"`
	PasportNo   *string `gorm:"column:pasport_no;size:16" json:"pasport_no"`
	TinNo       *string `gorm:"column:tin_no;size:16" json:"tin_no"`

	EmrgCellNo  *string `gorm:"column:emrg_cell_no;size:16" json:"emrg_cell_no"`
	EmrgAddress *string `gorm:"column:emrg_address;size:64" json:"emrg_address"`

	RefContactName *string `gorm:"column:ref_contact_name;size:32" json:"ref_contact_name"`
	RefRelation    *string `gorm:"column:ref_relation;size:16" json:"ref_relation"`
	RefAddress     *string `gorm:"column:ref_address;size:64" json:"ref_address"`
}

func (EmpPersonal) TableName() string {
	return "EMP_PERSONAL"
}

// BeforeCreate enforces the schema's date-of-birth constraints: year 1900 or
// later, and a minimum age of 18. A nil date passes.
func (e *EmpPersonal) BeforeCreate(tx *gorm.DB) error {
	if e.DateOfBirth == nil {
		return nil
	}
	dob := *e.DateOfBirth
	if dob.Year() < 1900 {
		return ErrDateOfBirthTooEarly
	}
	now := time.Now()
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < 18 {
		return ErrUnderMinimumAge
	}
	return nil
}
