// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"etree.io/etree/ent/fieldvalue"
	"etree.io/etree/ent/otp"
	"etree.io/etree/ent/permission"
	"etree.io/etree/ent/requiredfield"
	"etree.io/etree/ent/role"
	"etree.io/etree/ent/schema"
	"etree.io/etree/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	fieldvalueMixin := schema.FieldValue{}.Mixin()
	fieldvalueMixinFields0 := fieldvalueMixin[0].Fields()
	_ = fieldvalueMixinFields0
	fieldvalueFields := schema.FieldValue{}.Fields()
	_ = fieldvalueFields
	// fieldvalueDescCreatedAt is the schema descriptor for created_at field.
	fieldvalueDescCreatedAt := fieldvalueMixinFields0[0].Descriptor()
	// fieldvalue.DefaultCreatedAt holds the default value on creation for the created_at field.
	fieldvalue.DefaultCreatedAt = fieldvalueDescCreatedAt.Default.(func() time.Time)
	// fieldvalueDescUpdatedAt is the schema descriptor for updated_at field.
	fieldvalueDescUpdatedAt := fieldvalueMixinFields0[1].Descriptor()
	// fieldvalue.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fieldvalue.DefaultUpdatedAt = fieldvalueDescUpdatedAt.Default.(func() time.Time)
	// fieldvalue.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fieldvalue.UpdateDefaultUpdatedAt = fieldvalueDescUpdatedAt.UpdateDefault.(func() time.Time)
	otpFields := schema.Otp{}.Fields()
	_ = otpFields
	// otpDescCode is the schema descriptor for code field.
	otpDescCode := otpFields[2].Descriptor()
	// otp.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	otp.CodeValidator = func() func(string) error {
		validators := otpDescCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(code string) error {
			for _, fn := range fns {
				if err := fn(code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// otpDescIsUsed is the schema descriptor for is_used field.
	otpDescIsUsed := otpFields[3].Descriptor()
	// otp.DefaultIsUsed holds the default value on creation for the is_used field.
	otp.DefaultIsUsed = otpDescIsUsed.Default.(bool)
	// otpDescCreatedAt is the schema descriptor for created_at field.
	otpDescCreatedAt := otpFields[5].Descriptor()
	// otp.DefaultCreatedAt holds the default value on creation for the created_at field.
	otp.DefaultCreatedAt = otpDescCreatedAt.Default.(func() time.Time)
	permissionMixin := schema.Permission{}.Mixin()
	permissionMixinFields0 := permissionMixin[0].Fields()
	_ = permissionMixinFields0
	permissionFields := schema.Permission{}.Fields()
	_ = permissionFields
	// permissionDescCreatedAt is the schema descriptor for created_at field.
	permissionDescCreatedAt := permissionMixinFields0[0].Descriptor()
	// permission.DefaultCreatedAt holds the default value on creation for the created_at field.
	permission.DefaultCreatedAt = permissionDescCreatedAt.Default.(func() time.Time)
	// permissionDescUpdatedAt is the schema descriptor for updated_at field.
	permissionDescUpdatedAt := permissionMixinFields0[1].Descriptor()
	// permission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	permission.DefaultUpdatedAt = permissionDescUpdatedAt.Default.(func() time.Time)
	// permission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	permission.UpdateDefaultUpdatedAt = permissionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// permissionDescTableName is the schema descriptor for table_name field.
	permissionDescTableName := permissionFields[0].Descriptor()
	// permission.TableNameValidator is a validator for the "table_name" field. It is called by the builders before save.
	permission.TableNameValidator = func() func(string) error {
		validators := permissionDescTableName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(table_name string) error {
			for _, fn := range fns {
				if err := fn(table_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// permissionDescMethod is the schema descriptor for method field.
	permissionDescMethod := permissionFields[1].Descriptor()
	// permission.MethodValidator is a validator for the "method" field. It is called by the builders before save.
	permission.MethodValidator = func() func(string) error {
		validators := permissionDescMethod.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(method string) error {
			for _, fn := range fns {
				if err := fn(method); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	requiredfieldMixin := schema.RequiredField{}.Mixin()
	requiredfieldMixinFields0 := requiredfieldMixin[0].Fields()
	_ = requiredfieldMixinFields0
	requiredfieldFields := schema.RequiredField{}.Fields()
	_ = requiredfieldFields
	// requiredfieldDescCreatedAt is the schema descriptor for created_at field.
	requiredfieldDescCreatedAt := requiredfieldMixinFields0[0].Descriptor()
	// requiredfield.DefaultCreatedAt holds the default value on creation for the created_at field.
	requiredfield.DefaultCreatedAt = requiredfieldDescCreatedAt.Default.(func() time.Time)
	// requiredfieldDescUpdatedAt is the schema descriptor for updated_at field.
	requiredfieldDescUpdatedAt := requiredfieldMixinFields0[1].Descriptor()
	// requiredfield.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	requiredfield.DefaultUpdatedAt = requiredfieldDescUpdatedAt.Default.(func() time.Time)
	// requiredfield.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	requiredfield.UpdateDefaultUpdatedAt = requiredfieldDescUpdatedAt.UpdateDefault.(func() time.Time)
	// requiredfieldDescFieldName is the schema descriptor for field_name field.
	requiredfieldDescFieldName := requiredfieldFields[1].Descriptor()
	// requiredfield.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	requiredfield.FieldNameValidator = func() func(string) error {
		validators := requiredfieldDescFieldName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(field_name string) error {
			for _, fn := range fns {
				if err := fn(field_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// requiredfieldDescFieldType is the schema descriptor for field_type field.
	requiredfieldDescFieldType := requiredfieldFields[2].Descriptor()
	// requiredfield.FieldTypeValidator is a validator for the "field_type" field. It is called by the builders before save.
	requiredfield.FieldTypeValidator = func() func(string) error {
		validators := requiredfieldDescFieldType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(field_type string) error {
			for _, fn := range fns {
				if err := fn(field_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// requiredfieldDescIsRequired is the schema descriptor for is_required field.
	requiredfieldDescIsRequired := requiredfieldFields[3].Descriptor()
	// requiredfield.DefaultIsRequired holds the default value on creation for the is_required field.
	requiredfield.DefaultIsRequired = requiredfieldDescIsRequired.Default.(bool)
	// requiredfieldDescIsActive is the schema descriptor for is_active field.
	requiredfieldDescIsActive := requiredfieldFields[9].Descriptor()
	// requiredfield.DefaultIsActive holds the default value on creation for the is_active field.
	requiredfield.DefaultIsActive = requiredfieldDescIsActive.Default.(bool)
	roleMixin := schema.Role{}.Mixin()
	roleMixinFields0 := roleMixin[0].Fields()
	_ = roleMixinFields0
	roleFields := schema.Role{}.Fields()
	_ = roleFields
	// roleDescCreatedAt is the schema descriptor for created_at field.
	roleDescCreatedAt := roleMixinFields0[0].Descriptor()
	// role.DefaultCreatedAt holds the default value on creation for the created_at field.
	role.DefaultCreatedAt = roleDescCreatedAt.Default.(func() time.Time)
	// roleDescUpdatedAt is the schema descriptor for updated_at field.
	roleDescUpdatedAt := roleMixinFields0[1].Descriptor()
	// role.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	role.DefaultUpdatedAt = roleDescUpdatedAt.Default.(func() time.Time)
	// role.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	role.UpdateDefaultUpdatedAt = roleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// roleDescName is the schema descriptor for name field.
	roleDescName := roleFields[0].Descriptor()
	// role.NameValidator is a validator for the "name" field. It is called by the builders before save.
	role.NameValidator = roleDescName.Validators[0].(func(string) error)
	// roleDescRegistrationAllowed is the schema descriptor for registration_allowed field.
	roleDescRegistrationAllowed := roleFields[2].Descriptor()
	// role.DefaultRegistrationAllowed holds the default value on creation for the registration_allowed field.
	role.DefaultRegistrationAllowed = roleDescRegistrationAllowed.Default.(bool)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFullName is the schema descriptor for full_name field.
	userDescFullName := userFields[1].Descriptor()
	// user.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	user.FullNameValidator = func() func(string) error {
		validators := userDescFullName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(full_name string) error {
			for _, fn := range fns {
				if err := fn(full_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[6].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
}
