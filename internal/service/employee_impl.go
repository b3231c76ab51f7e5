package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"visorhr.com/internal/domain"
	"visorhr.com/internal/infra"
	"visorhr.com/internal/model"
)

// Upload subdirectories under the media root.
const (
	photoDir     = "employees"
	signatureDir = "employees/signatures"
)

// dateLayouts accepted for date_of_birth, tried in order. The fallback day
// is unpadded so both "05-Jan-1990" and "5-Jan-1990" parse.
var dateLayouts = []string{"2006-01-02", "2-Jan-2006"}

// EmployeeServiceImpl implements domain.EmployeeService. Every save is an
// insert: no lookup by emp_code or emp_id is performed, so repeated
// submissions create duplicate records.
type EmployeeServiceImpl struct {
	db    *gorm.DB
	media *infra.MediaStore
}

func NewEmployeeService(db *gorm.DB, media *infra.MediaStore) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		db:    db,
		media: media,
	}
}

type textColumn struct {
	name string
	dst  **string
}

// textColumns maps payload field names to their record destinations, in
// intake-form order.
func textColumns(emp *model.EmpPersonal) []textColumn {
	return []textColumn{
		{"emp_code", &emp.EmpCode},
		{"emp_name", &emp.EmpName},
		{"bang_emp_name", &emp.BangEmpName},
		{"card_no", &emp.CardNo},
		{"father_name", &emp.FatherName},
		{"bang_father_name", &emp.BangFatherName},
		{"mother_name", &emp.MotherName},
		{"bang_mother_name", &emp.BangMotherName},
		{"husband_name", &emp.HusbandName},
		{"bang_husband_name", &emp.BangHusbandName},
		{"sex", &emp.Sex},
		{"religion", &emp.Religion},
		{"blood_group", &emp.BloodGroup},
		{"marital_status", &emp.MaritalStatus},
		{"nationality", &emp.Nationality},
		{"town_of_birth", &emp.TownOfBirth},
		{"education", &emp.Education},
		{"employement", &emp.Employement},
		{"passed_year", &emp.PassedYear},
		{"last_exp", &emp.LastExp},
		{"curr_activity", &emp.CurrActivity},
		{"sob", &emp.Sob},
		{"e_mail", &emp.EMail},
		{"contact_no", &emp.ContactNo},
		{"emergency_cell", &emp.EmergencyCell},
		{"emrg_cell_no", &emp.EmrgCellNo},
		{"emrg_address", &emp.EmrgAddress},
		{"national_id", &emp.NationalID},
		{"birth_certificate_no", &emp.BirthCertificateNo},
		{"smart_id", &emp.SmartID},
		{"pasport_no", &emp.PasportNo},
		{"tin_no", &emp.TinNo},
		{"nominee_cell_no", &emp.NomineeCellNo},
		{"ref_contact_name", &emp.RefContactName},
		{"ref_relation", &emp.RefRelation},
		{"ref_address", &emp.RefAddress},
		{"present_vill", &emp.PresentVill},
		{"bang_present_vill", &emp.BangPresentVill},
		{"present_house", &emp.PresentHouse},
		{"present_ps", &emp.PresentPS},
		{"bang_present_ps", &emp.BangPresentPS},
		{"present_dist", &emp.PresentDist},
		{"bang_present_dist", &emp.BangPresentDist},
		{"present_address", &emp.PresentAddress},
		{"bang_present_post", &emp.BangPresentPost},
		{"present_postal_code", &emp.PresentPostalCode},
		{"parmanent_house", &emp.ParmanentHouse},
		{"parmanent_vill", &emp.ParmanentVill},
		{"bang_permanent_vill", &emp.BangPermanentVill},
		{"parmanent_ps", &emp.ParmanentPS},
		{"bang_permanent_ps", &emp.BangPermanentPS},
		{"parmanent_dist", &emp.ParmanentDist},
		{"bang_permanent_dist", &emp.BangPermanentDist},
		{"permanent_address", &emp.PermanentAddress},
		{"parmenent_address", &emp.ParmenentAddress},
		{"bang_permanent_post", &emp.BangPermanentPost},
		{"permanent_postal_code", &emp.PermanentPostalCode},
		{"pre_house_owner", &emp.PreHouseOwner},
		{"pre_house_owner_bang", &emp.PreHouseOwnerBang},
		{"remarks", &emp.Remarks},
	}
}

func (s *EmployeeServiceImpl) Save(ctx context.Context, in *domain.EmployeeInput) (*model.EmpPersonal, error) {
	emp := &model.EmpPersonal{}

	for _, col := range textColumns(emp) {
		*col.dst = textValue(in.Fields, col.name)
	}

	emp.ChildMale = intValue(in.Fields, "child_male")
	emp.ChildFemale = intValue(in.Fields, "child_female")
	emp.Contractual = contractualValue(in.Fields)
	emp.DateOfBirth = dateValue(in.Fields, "date_of_birth")

	if in.Photo != nil {
		path, err := s.media.Save(in.Photo, photoDir)
		if err != nil {
			return nil, domain.NewInternalError("Failed to store photo", err)
		}
		emp.EmpPhoto = &path
	}
	if in.Signature != nil {
		path, err := s.media.Save(in.Signature, signatureDir)
		if err != nil {
			return nil, domain.NewInternalError("Failed to store signature", err)
		}
		emp.EmpSignature = &path
	}

	userID := int64(in.UserID)
	now := time.Now()
	if emp.PhotoAddedBy == nil {
		emp.PhotoAddedBy = &userID
	}
	emp.PhotoAddedDate = &now
	emp.UpdatedBy = &userID
	emp.UpdatedDate = &now

	if err := s.db.WithContext(ctx).Create(emp).Error; err != nil {
		return nil, domain.NewInternalError("Failed to save employee", err)
	}

	return emp, nil
}

// textValue returns the trimmed string for a field, or nil when the field is
// absent, empty, or whitespace-only. Non-string scalars are rendered as text.
func textValue(fields map[string]any, name string) *string {
	raw, ok := fields[name]
	if !ok || raw == nil {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		s = fmt.Sprint(raw)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// intValue coerces a field to an int. Missing, empty, or non-numeric input
// yields nil rather than an error.
func intValue(fields map[string]any, name string) *int {
	switch raw := fields[name].(type) {
	case float64:
		n := int(raw)
		return &n
	case string:
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return nil
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

// dateValue coerces a field to a calendar date, trying ISO then DD-Mon-YYYY.
// Unparseable input yields nil rather than an error.
func dateValue(fields map[string]any, name string) *time.Time {
	v := textValue(fields, name)
	if v == nil {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, *v); err == nil {
			return &t
		}
	}
	return nil
}

// contractualValue returns the submitted flag upper-cased, defaulting to "N".
func contractualValue(fields map[string]any) string {
	if v := textValue(fields, "contractual"); v != nil {
		return strings.ToUpper(*v)
	}
	return model.ContractualNo
}
