// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FieldValuesColumns holds the columns for the "field_values" table.
	FieldValuesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "value", Type: field.TypeJSON},
		{Name: "field_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeString},
	}
	// FieldValuesTable holds the schema information for the "field_values" table.
	FieldValuesTable = &schema.Table{
		Name:       "field_values",
		Columns:    FieldValuesColumns,
		PrimaryKey: []*schema.Column{FieldValuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "field_values_required_fields_values",
				Columns:    []*schema.Column{FieldValuesColumns[4]},
				RefColumns: []*schema.Column{RequiredFieldsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "field_values_users_field_values",
				Columns:    []*schema.Column{FieldValuesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fieldvalue_user_id_field_id",
				Unique:  true,
				Columns: []*schema.Column{FieldValuesColumns[5], FieldValuesColumns[4]},
			},
		},
	}
	// OtpsColumns holds the columns for the "otps" table.
	OtpsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "code", Type: field.TypeString, Size: 10},
		{Name: "is_used", Type: field.TypeBool, Default: false},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// OtpsTable holds the schema information for the "otps" table.
	OtpsTable = &schema.Table{
		Name:       "otps",
		Columns:    OtpsColumns,
		PrimaryKey: []*schema.Column{OtpsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "otps_users_otps",
				Columns:    []*schema.Column{OtpsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "otp_user_id_code",
				Unique:  false,
				Columns: []*schema.Column{OtpsColumns[5], OtpsColumns[1]},
			},
		},
	}
	// PermissionsColumns holds the columns for the "permissions" table.
	PermissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "table_name", Type: field.TypeString, Size: 100},
		{Name: "method", Type: field.TypeString, Size: 20},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// PermissionsTable holds the schema information for the "permissions" table.
	PermissionsTable = &schema.Table{
		Name:       "permissions",
		Columns:    PermissionsColumns,
		PrimaryKey: []*schema.Column{PermissionsColumns[0]},
	}
	// RequiredFieldsColumns holds the columns for the "required_fields" table.
	RequiredFieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "field_name", Type: field.TypeString, Size: 100},
		{Name: "field_type", Type: field.TypeString, Size: 50},
		{Name: "is_required", Type: field.TypeBool, Default: true},
		{Name: "filled_by_role_id", Type: field.TypeInt},
		{Name: "editable_by_role_id", Type: field.TypeInt, Nullable: true},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "validation", Type: field.TypeJSON, Nullable: true},
		{Name: "display_order", Type: field.TypeInt, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "role_id", Type: field.TypeInt},
	}
	// RequiredFieldsTable holds the schema information for the "required_fields" table.
	RequiredFieldsTable = &schema.Table{
		Name:       "required_fields",
		Columns:    RequiredFieldsColumns,
		PrimaryKey: []*schema.Column{RequiredFieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "required_fields_roles_required_fields",
				Columns:    []*schema.Column{RequiredFieldsColumns[12]},
				RefColumns: []*schema.Column{RolesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "requiredfield_role_id",
				Unique:  false,
				Columns: []*schema.Column{RequiredFieldsColumns[12]},
			},
			{
				Name:    "requiredfield_is_active",
				Unique:  false,
				Columns: []*schema.Column{RequiredFieldsColumns[11]},
			},
			{
				Name:    "requiredfield_role_id_field_name",
				Unique:  true,
				Columns: []*schema.Column{RequiredFieldsColumns[12], RequiredFieldsColumns[3]},
			},
		},
	}
	// RolesColumns holds the columns for the "roles" table.
	RolesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "registration_allowed", Type: field.TypeBool, Default: false},
		{Name: "registration_by_roles", Type: field.TypeJSON, Nullable: true},
	}
	// RolesTable holds the schema information for the "roles" table.
	RolesTable = &schema.Table{
		Name:       "roles",
		Columns:    RolesColumns,
		PrimaryKey: []*schema.Column{RolesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "role_name",
				Unique:  true,
				Columns: []*schema.Column{RolesColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "full_name", Type: field.TypeString, Size: 200},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "profile_picture", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "role_id", Type: field.TypeInt},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_roles_users",
				Columns:    []*schema.Column{UsersColumns[8]},
				RefColumns: []*schema.Column{RolesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// RolePermissionsColumns holds the columns for the "role_permissions" table.
	RolePermissionsColumns = []*schema.Column{
		{Name: "role_id", Type: field.TypeInt},
		{Name: "permission_id", Type: field.TypeInt},
	}
	// RolePermissionsTable holds the schema information for the "role_permissions" table.
	RolePermissionsTable = &schema.Table{
		Name:       "role_permissions",
		Columns:    RolePermissionsColumns,
		PrimaryKey: []*schema.Column{RolePermissionsColumns[0], RolePermissionsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "role_permissions_role_id",
				Columns:    []*schema.Column{RolePermissionsColumns[0]},
				RefColumns: []*schema.Column{RolesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "role_permissions_permission_id",
				Columns:    []*schema.Column{RolePermissionsColumns[1]},
				RefColumns: []*schema.Column{PermissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FieldValuesTable,
		OtpsTable,
		PermissionsTable,
		RequiredFieldsTable,
		RolesTable,
		UsersTable,
		RolePermissionsTable,
	}
)

func init() {
	FieldValuesTable.ForeignKeys[0].RefTable = RequiredFieldsTable
	FieldValuesTable.ForeignKeys[1].RefTable = UsersTable
	OtpsTable.ForeignKeys[0].RefTable = UsersTable
	RequiredFieldsTable.ForeignKeys[0].RefTable = RolesTable
	UsersTable.ForeignKeys[0].RefTable = RolesTable
	RolePermissionsTable.ForeignKeys[0].RefTable = RolesTable
	RolePermissionsTable.ForeignKeys[1].RefTable = PermissionsTable
}
